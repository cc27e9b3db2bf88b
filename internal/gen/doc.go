// Package gen renders resolved tables as Go source.
//
// Generation uses text/template + go/format. Each table becomes one file
// holding:
//   - the enumeration type and one constant per case (ordinals from 0)
//   - the record type
//   - the count constant and the value and name tables
//   - Info, IsValid, String, Clone, Equal and Hash methods
//   - forward and backward iter.Seq iterators
//   - a range-checked From<Width> constructor
//   - MarshalText and UnmarshalText when requested
//
// The output depends on the standard library only.
package gen
