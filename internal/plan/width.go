package plan

import (
	"strconv"
	"strings"
)

// Width is the bit size of the unsigned integer backing an enumeration.
type Width int

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// DefaultWidth is used when no repr is given or the given one is rejected.
const DefaultWidth = Width32

// WidthNames returns the Go type names of the supported widths.
func WidthNames() []string {
	return []string{Width8.GoType(), Width16.GoType(), Width32.GoType(), Width64.GoType()}
}

// ParseWidth accepts "uint8".."uint64", "byte", and bare bit sizes
// ("8".."64").
func ParseWidth(text string) (Width, bool) {
	text = strings.TrimSpace(text)
	if text == "byte" {
		return Width8, true
	}

	text = strings.TrimPrefix(text, "uint")

	bits, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}

	w := Width(bits)

	return w, w.IsValid()
}

// IsValid reports whether w is one of the supported widths.
func (w Width) IsValid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

// GoType returns the Go type name, e.g. "uint32".
func (w Width) GoType() string {
	return "uint" + strconv.Itoa(int(w))
}

// FuncSuffix returns the exported form used in generated function names,
// e.g. "Uint32".
func (w Width) FuncSuffix() string {
	return "Uint" + strconv.Itoa(int(w))
}

// Holds reports whether n distinct ordinals (0..n-1) fit in the width.
func (w Width) Holds(n int) bool {
	if n <= 0 || w >= Width64 {
		return true
	}

	return uint64(n-1) <= uint64(1)<<uint(w)-1
}

func (w Width) String() string {
	return w.GoType()
}
