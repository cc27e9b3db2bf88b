package match

import (
	"slices"
	"strings"
)

// DefaultMinScore is the lowest similarity Suggest accepts.
const DefaultMinScore = 0.6

// Candidate is a known name scored against an unrecognized one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a ranked list of candidates, best first.
type CandidateList []Candidate

// Rank scores every known name against target. The result is sorted by
// score (descending), then by name for determinism. Duplicate known names
// are ranked once.
func Rank(target string, known []string) CandidateList {
	seen := make(map[string]bool, len(known))
	candidates := make(CandidateList, 0, len(known))

	for _, name := range known {
		if seen[name] {
			continue
		}

		seen[name] = true

		candidates = append(candidates, Candidate{
			Name:  name,
			Score: NormalizedSimilarity(target, name),
		})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return strings.Compare(a.Name, b.Name)
		}
	})

	return candidates
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}

	return names
}

// Suggest returns up to n known names close enough to target to be a
// likely misspelling, best first. It returns nil when none qualifies.
func Suggest(target string, known []string, n int) []string {
	if strings.TrimSpace(target) == "" || n <= 0 {
		return nil
	}

	ranked := Rank(target, known).AboveThreshold(DefaultMinScore).Top(n)
	if len(ranked) == 0 {
		return nil
	}

	return ranked.Names()
}
