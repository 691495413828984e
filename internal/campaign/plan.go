package campaign

import "fmt"

// Defaults shared by the CLI flags and the medgen.toml manifest.
const (
	DefaultSolc       = "0.8.23"
	DefaultLicense    = "MIT"
	DefaultHandlers   = 2
	DefaultProperties = 2
)

// Config holds the resolved generation parameters for one run.
type Config struct {
	Handlers   uint8
	Properties uint8
	Solc       string
	License    string
}

// Validate checks the leaf counts against the naming range.
func (c Config) Validate() error {
	for _, family := range []Family{FamilyHandler, FamilyProperty} {
		count, err := c.LeafCount(family)
		if err != nil {
			return err
		}
		if count < 1 || count > MaxLeaves {
			return fmt.Errorf("%d %s contracts: %w", count, family, ErrCountOutOfRange)
		}
	}
	return nil
}

// LeafCount returns how many leaf contracts the family generates under this
// config. Families that produce a single contract are an invalid query, not
// a zero count.
func (c Config) LeafCount(family Family) (uint8, error) {
	switch family {
	case FamilyHandler:
		return c.Handlers, nil
	case FamilyProperty:
		return c.Properties, nil
	default:
		return 0, fmt.Errorf("%s: %w", family, ErrNotLeafFamily)
	}
}

// Plan is the complete ordered set of contracts for one campaign: handler
// leaves, HandlerParent, property leaves, PropertyParent, FuzzTest, Setup.
type Plan struct {
	Units []Unit
}

// BuildPlan computes every contract of the campaign from the config alone.
// It touches no state outside its inputs, so two calls with the same config
// produce identical plans and a dry run can print the exact final file set.
func BuildPlan(cfg Config) (*Plan, error) {
	if cfg.Solc == "" {
		cfg.Solc = DefaultSolc
	}
	if cfg.License == "" {
		cfg.License = DefaultLicense
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plan := &Plan{}
	for _, family := range []Family{FamilyHandler, FamilyProperty} {
		leaves, err := leafUnits(family, cfg)
		if err != nil {
			return nil, err
		}
		plan.Units = append(plan.Units, leaves...)
		plan.Units = append(plan.Units, aggregatorUnit(family, leaves, cfg))
	}

	plan.Units = append(plan.Units, singleUnit(FamilyEntryPoint, cfg))
	plan.Units = append(plan.Units, singleUnit(FamilySetup, cfg))
	return plan, nil
}

// leafUnits builds the leaf contracts of a family in increasing letter
// order. Every leaf imports and inherits from the family's fixed parent.
func leafUnits(family Family, cfg Config) ([]Unit, error) {
	count, err := cfg.LeafCount(family)
	if err != nil {
		return nil, err
	}
	leaves := make([]Unit, 0, count)
	for i := uint8(0); i < count; i++ {
		name, err := LeafName(family, i)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, Unit{
			License: cfg.License,
			Solc:    cfg.Solc,
			Imports: family.ImportLine() + "\n",
			Name:    name,
			Parents: family.ImportName(),
			Dir:     family.Dir(),
		})
	}
	return leaves, nil
}

// aggregatorUnit builds the contract that imports and inherits from every
// leaf of the family.
func aggregatorUnit(family Family, leaves []Unit, cfg Config) Unit {
	return Unit{
		License: cfg.License,
		Solc:    cfg.Solc,
		Imports: BuildImportBlock(leaves),
		Name:    family.AggregatorName(),
		Parents: BuildParentList(leaves),
		Dir:     family.Dir(),
	}
}

// singleUnit builds the one contract of a non-leaf family.
func singleUnit(family Family, cfg Config) Unit {
	imports := ""
	if line := family.ImportLine(); line != "" {
		imports = line + "\n"
	}
	return Unit{
		License: cfg.License,
		Solc:    cfg.Solc,
		Imports: imports,
		Name:    family.Stem(),
		Parents: family.ImportName(),
		Dir:     family.Dir(),
	}
}
