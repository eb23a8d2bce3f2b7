package directory

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"localconnect/internal/database/repository"
)

// Suggest returns the roster term (name, profession, or skill) closest to a
// query that matched nothing, or "" when nothing is close enough. Distance
// tolerance scales with query length so short queries don't produce wild
// guesses.
func Suggest(providers []repository.Provider, query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	limit := 1 + len(q)/4
	if limit > 3 {
		limit = 3
	}

	best := ""
	bestDist := limit + 1
	seen := map[string]bool{}
	consider := func(term string) {
		lower := strings.ToLower(term)
		if term == "" || seen[lower] {
			return
		}
		seen[lower] = true
		dist := levenshtein.ComputeDistance(q, lower)
		if dist > 0 && dist < bestDist {
			best = term
			bestDist = dist
		}
	}

	for _, p := range providers {
		consider(p.Profession)
		for _, s := range p.Skills {
			consider(s)
		}
		consider(p.Name)
	}
	return best
}
