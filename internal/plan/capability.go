package plan

import (
	"maps"
	"slices"
)

//go:generate go tool stringer -type=Capability -trimprefix=Capability -output=capability_string.go

// Capability is a behavior attached to a generated enumeration.
type Capability int

const (
	CapabilityCopy Capability = iota
	CapabilityClone
	CapabilityString
	CapabilityHash
	CapabilityEqual
	CapabilityComparable

	// CapabilityText adds MarshalText and UnmarshalText. It is the only
	// capability a declaration may request.
	CapabilityText
)

// capabilityNames maps every accepted spelling to its capability. The
// aliases keep declarations ported from other enum derivers working.
var capabilityNames = map[string]Capability{
	"Copy":       CapabilityCopy,
	"Clone":      CapabilityClone,
	"String":     CapabilityString,
	"Stringer":   CapabilityString,
	"Debug":      CapabilityString,
	"Hash":       CapabilityHash,
	"Equal":      CapabilityEqual,
	"PartialEq":  CapabilityEqual,
	"Comparable": CapabilityComparable,
	"Eq":         CapabilityComparable,
	"Text":       CapabilityText,
}

// ParseCapability resolves a capability name or alias.
func ParseCapability(name string) (Capability, bool) {
	c, ok := capabilityNames[name]
	return c, ok
}

// CapabilityNames returns every accepted capability spelling, sorted.
func CapabilityNames() []string {
	return slices.Sorted(maps.Keys(capabilityNames))
}

// IsReserved reports whether the generator always supplies c.
func (c Capability) IsReserved() bool {
	return c >= CapabilityCopy && c < CapabilityText
}
