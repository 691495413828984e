package campaign

import "errors"

// Family identifies one of the four kinds of generated contract.
type Family uint8

const (
	FamilyHandler Family = iota
	FamilyProperty
	FamilyEntryPoint
	FamilySetup
)

var (
	// ErrNotLeafFamily is returned when a leaf-set operation is invoked on a
	// family that always produces exactly one contract.
	ErrNotLeafFamily = errors.New("family does not generate leaf contracts")

	// ErrOrdinalOutOfRange is returned when a leaf ordinal falls outside the
	// single-letter naming range A..Z.
	ErrOrdinalOutOfRange = errors.New("leaf ordinal out of range")

	// ErrCountOutOfRange is returned for leaf counts outside 1..26.
	ErrCountOutOfRange = errors.New("leaf count must be between 1 and 26")
)

// familyInfo is the fixed per-family metadata: the contract name stem, the
// output subdirectory (empty means the campaign root) and the single parent
// every generated leaf of the family inherits from.
type familyInfo struct {
	stem       string
	dir        string
	importName string
	importLine string
}

var familyTable = [...]familyInfo{
	FamilyHandler: {
		stem:       "Handler",
		dir:        "handlers",
		importName: "Setup",
		importLine: "import {Setup} from '../Setup.t.sol';",
	},
	FamilyProperty: {
		stem:       "Property",
		dir:        "properties",
		importName: "HandlerParent",
		importLine: "import {HandlerParent} from '../handlers/HandlerParent.t.sol';",
	},
	FamilyEntryPoint: {
		stem:       "FuzzTest",
		dir:        "",
		importName: "PropertyParent",
		importLine: "import {PropertyParent} from './properties/PropertyParent.t.sol';",
	},
	FamilySetup: {
		stem:       "Setup",
		dir:        "",
		importName: "",
		importLine: "",
	},
}

func (f Family) String() string {
	switch f {
	case FamilyHandler:
		return "handler"
	case FamilyProperty:
		return "property"
	case FamilyEntryPoint:
		return "entry point"
	case FamilySetup:
		return "setup"
	}
	return "unknown"
}

// Stem is the base contract name for the family.
func (f Family) Stem() string { return familyTable[f].stem }

// Dir is the output subdirectory relative to the campaign root; empty for
// families written beside the root.
func (f Family) Dir() string { return familyTable[f].dir }

// ImportName is the identifier every leaf of the family inherits from.
func (f Family) ImportName() string { return familyTable[f].importName }

// ImportLine is the full import statement for ImportName, relative to the
// family's output directory.
func (f Family) ImportLine() string { return familyTable[f].importLine }

// IsLeafFamily reports whether the family generates a set of leaf contracts
// plus an aggregator, as opposed to exactly one contract.
func (f Family) IsLeafFamily() bool {
	return f == FamilyHandler || f == FamilyProperty
}

// AggregatorName is the name of the contract that inherits from every leaf
// of the family.
func (f Family) AggregatorName() string { return f.Stem() + "Parent" }
