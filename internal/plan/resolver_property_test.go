package plan

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"consttable/internal/decl"
)

var propertyWidths = []string{"", "uint16", "uint32", "uint64"}

// TestCountAndOrdinalsProperty checks that every data case gets the next
// dense ordinal in declaration order and that the count does not depend on
// the selected width.
func TestCountAndOrdinalsProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("ordinals are dense and count matches", prop.ForAll(
		func(n, widthIdx int) bool {
			table, diags := ResolveItem("", countedItem(n, propertyWidths[widthIdx]), DefaultConfig())
			if table == nil || diags.HasErrors() || table.Count() != n {
				return false
			}

			for i, c := range table.Cases {
				if c.Ordinal != i || c.Name != countedItem(n, "").Variants[i+1].Name.Text {
					return false
				}
			}

			return true
		},
		gen.IntRange(1, 300),
		gen.IntRange(0, len(propertyWidths)-1),
	))

	properties.TestingRun(t)
}

var reservedSpellings = []string{
	"Copy", "Clone", "Debug", "String", "Stringer", "Hash",
	"PartialEq", "Equal", "Eq", "Comparable",
}

// TestReservedConflictProperty checks that each distinct reserved
// capability yields exactly one conflict, however often it is requested.
func TestReservedConflictProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("one conflict per distinct reserved capability", prop.ForAll(
		func(picks []int) bool {
			item := countedItem(2, "")
			distinct := make(map[Capability]struct{})

			for _, p := range picks {
				name := reservedSpellings[p]
				item.Derive = append(item.Derive, decl.Scalar{Text: name})

				c, _ := ParseCapability(name)
				distinct[c] = struct{}{}
			}

			table, diags := ResolveItem("", item, DefaultConfig())
			if table == nil || len(table.Capabilities) != 0 {
				return false
			}

			for _, d := range diags.Errors {
				if d.Code != CodeReservedCapability {
					return false
				}
			}

			return len(diags.Errors) == len(distinct)
		},
		gen.SliceOf(gen.IntRange(0, len(reservedSpellings)-1)),
	))

	properties.TestingRun(t)
}
