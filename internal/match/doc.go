// Package match ranks known names by their similarity to an unrecognized
// one, so diagnostics can offer "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: scores every known name against a misspelled one
//   - Suggest: returns the best known names above a score threshold
package match
