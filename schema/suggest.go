package schema

import "github.com/agnivade/levenshtein"

// FindBestMatch returns the candidate closest to target by edit
// distance, if any lies within maxDist. Ties go to the earliest
// candidate.
func FindBestMatch(target string, candidates []string, maxDist int) (string, bool) {
	best := ""
	bestDist := maxDist + 1
	for _, cand := range candidates {
		d := levenshtein.ComputeDistance(target, cand)
		if d < bestDist {
			bestDist = d
			best = cand
		}
	}
	if bestDist > maxDist {
		return "", false
	}
	return best, true
}
