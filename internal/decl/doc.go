// Package decl defines the structured declaration consumed by the
// consttable generator and decodes it from YAML.
//
// A declaration file lists items; each item describes one enumeration:
//
//	version: "1"
//	package: species
//	items:
//	  - kind: enum
//	    name: SpeciesID
//	    repr: uint32
//	    derive: [Text]
//	    cases:
//	      - name: SpeciesInfo
//	        fields:
//	          - {name: Sound, type: string}
//	          - {name: Legs, type: uint64}
//	      - name: Cat
//	        value: 'SpeciesInfo{Sound: "Meow!", Legs: 4}'
//
// The decoder only checks the document shape (against an embedded JSON
// Schema) and records source positions. Whether an item is a well-formed
// table is decided later by the planner, so that every structural problem
// can be reported with its own diagnostic.
package decl
