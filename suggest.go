package argot

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestions caps the names offered for an unknown command.
const maxSuggestions = 3

// suggestCommands returns the names among candidates closest to target.
// Candidates containing the letters of target in order rank first, then
// candidates within a small edit distance.
func suggestCommands(target string, candidates []string) []string {
	if target == "" || len(candidates) == 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	sort.Stable(ranks)

	var out []string
	for _, r := range ranks {
		out = append(out, r.Target)
	}

	lower := strings.ToLower(target)
	threshold := max(1, len(target)/3)
	var near []string
	for _, c := range candidates {
		if slices.Contains(out, c) {
			continue
		}
		if fuzzy.LevenshteinDistance(lower, strings.ToLower(c)) <= threshold {
			near = append(near, c)
		}
	}
	slices.Sort(near)
	out = append(out, near...)

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
