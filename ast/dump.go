package ast

import (
	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "\t",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns a debug representation of the forest with every field of
// every node and token.
func Dump(forest Forest) string {
	return dumpConfig.Sdump(forest)
}
