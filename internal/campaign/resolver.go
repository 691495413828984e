package campaign

import (
	"fmt"
	"strings"
)

// BuildImportBlock returns one import line per leaf, in leaf order:
//
//	import { HandlerA } from './HandlerA.t.sol';
//	import { HandlerB } from './HandlerB.t.sol';
//
// No deduplication is performed; leaf names are distinct by construction.
// An empty slice yields the empty string.
func BuildImportBlock(leaves []Unit) string {
	var b strings.Builder
	for _, leaf := range leaves {
		fmt.Fprintf(&b, "import { %s } from './%s%s';\n", leaf.Name, leaf.Name, SourceFileExt)
	}
	return b.String()
}

// BuildParentList joins the leaf names for the aggregator's inheritance
// clause: "HandlerA, HandlerB". No trailing separator; an empty slice yields
// the empty string, in which case the template omits the "is" clause.
func BuildParentList(leaves []Unit) string {
	names := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		names = append(names, leaf.Name)
	}
	return strings.Join(names, ", ")
}
