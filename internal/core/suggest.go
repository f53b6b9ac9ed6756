package core

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to limit candidates that are close to name, nearest first.
// Matching is case-insensitive; the accepted edit distance grows with the
// length of the candidate.
func Suggest(name string, candidates []string, limit int) []string {
	in := strings.ToLower(strings.TrimSpace(name))
	if in == "" || limit <= 0 {
		return nil
	}
	type scored struct {
		name string
		dist int
	}
	var hits []scored
	for _, cand := range candidates {
		lc := strings.ToLower(cand)
		if lc == in {
			continue
		}
		if strings.HasPrefix(lc, in) {
			hits = append(hits, scored{name: cand, dist: 0})
			continue
		}
		dist := levenshtein.ComputeDistance(in, lc)
		if dist > distanceLimit(len(lc)) {
			continue
		}
		hits = append(hits, scored{name: cand, dist: dist})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].name < hits[j].name
		}
		return hits[i].dist < hits[j].dist
	})
	out := make([]string, 0, limit)
	for _, h := range hits {
		out = append(out, h.name)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
