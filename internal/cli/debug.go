package cli

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"consttable/internal/plan"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dumpPlan writes the resolved plan to w for --debug runs.
func dumpPlan(w io.Writer, p *plan.ResolvedPlan) {
	if p == nil {
		return
	}

	dumpConfig.Fdump(w, p)
}
