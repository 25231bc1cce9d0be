package match

import (
	"sort"
)

// DefaultThreshold is the minimal score of a name worth suggesting.
const DefaultThreshold = 0.5

// Candidate is a known name ranked against a requested one.
type Candidate struct {
	Name  string
	Score float64 // see Score, 0 to 1

	// Metadata for debugging/explanation
	NormalizedName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates ranks every known name against requested.
// Returns candidates sorted by score (descending).
func RankCandidates(requested string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	for _, name := range known {
		candidates = append(candidates, Candidate{
			Name:           name,
			Score:          Score(requested, name),
			NormalizedName: Normalize(name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns at most n known names close enough to requested, best first.
// An exact match is never suggested.
func Suggest(requested string, known []string, n int) []string {
	var res []string

	for _, cand := range RankCandidates(requested, known).AboveThreshold(DefaultThreshold).Top(n + 1) {
		if cand.Name == requested {
			continue
		}

		res = append(res, cand.Name)
	}

	if len(res) > n {
		res = res[:n]
	}

	return res
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	// Higher score comes first
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}
	// Tie-breaker: alphabetical by name
	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}
	diff := c[0].Score - c[1].Score
	return diff < threshold
}

// AboveThreshold returns candidates with score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}
