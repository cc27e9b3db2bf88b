// Package plan turns a declaration item into a Table that code generation
// can render directly.
//
// Resolution pipeline, per item:
//  1. Check the item kind, name and generic parameters
//  2. Select the representation width
//  3. Drop capability requests the generator already fulfills
//  4. Classify cases: the first is the layout, the rest are data rows
//  5. Parse field types and initializers as Go expressions
//  6. Check names, duplicates and width capacity
//
// Problems are collected as diagnostics. Fatal ones (wrong kind, no data
// case, layout without named fields) yield no Table; every other problem is
// reported and patched over so the rest of the item is still checked.
package plan
