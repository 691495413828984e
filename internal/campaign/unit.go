package campaign

import "path"

// SourceFileExt is the suffix shared by every generated contract file.
const SourceFileExt = ".t.sol"

// Unit is one contract to be rendered and written. The first five fields are
// exactly what the contract template substitutes; Dir records where the file
// goes relative to the campaign root. Units are built once by BuildPlan and
// never mutated.
type Unit struct {
	License string
	Solc    string
	Imports string
	Name    string
	Parents string
	Dir     string
}

// FileName is the on-disk name of the rendered contract.
func (u Unit) FileName() string { return u.Name + SourceFileExt }

// RelPath is the slash-separated path of the rendered contract relative to
// the campaign root.
func (u Unit) RelPath() string {
	if u.Dir == "" {
		return u.FileName()
	}
	return path.Join(u.Dir, u.FileName())
}
