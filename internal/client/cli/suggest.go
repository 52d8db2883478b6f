package cli

import (
	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known command.
const maxSuggestDistance = 2

// suggest returns the known command closest to cmd, or "" if none is close.
func suggest(cmd string, known []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, k := range known {
		d := levenshtein.ComputeDistance(cmd, k)
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
