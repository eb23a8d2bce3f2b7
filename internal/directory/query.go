// Package directory derives listing views of the provider roster from
// query parameters. Everything here is pure: inputs are never mutated and
// identical inputs always produce identical output.
package directory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"localconnect/internal/database/repository"
)

// SortKey selects the listing order.
type SortKey int

const (
	SortRatingDesc SortKey = iota
	SortNameAsc
)

// Params is the combined query state driving the visible listing. It is
// replaced wholesale whenever any input changes; there is no partial
// mutation.
type Params struct {
	Search   string // free text, empty = no text filter
	Location string // exact match, empty = any location
	Sort     SortKey
}

// Engine derives listing views for one collation locale. Name ordering is
// locale-aware so accented names sort naturally instead of byte-wise.
type Engine struct {
	coll *collate.Collator
}

func NewEngine(tag language.Tag) *Engine {
	return &Engine{coll: collate.New(tag)}
}

// DeriveView returns the subset of providers matching params, sorted by the
// sort key. The input slice is never modified. Both filters are pure
// predicates composed with AND; the text filter matches case-insensitive
// substrings of name, profession, or any skill, and the location filter is
// exact, case-sensitive equality.
func (e *Engine) DeriveView(providers []repository.Provider, p Params) []repository.Provider {
	var out []repository.Provider
	for _, pr := range providers {
		if !matchesSearch(pr, p.Search) {
			continue
		}
		if !matchesLocation(pr, p.Location) {
			continue
		}
		out = append(out, pr)
	}
	e.sortProviders(out, p.Sort)
	return out
}

// Locations returns the distinct provider locations in first-seen order,
// which keeps the filter selector deterministic for a fixed roster.
func Locations(providers []repository.Provider) []string {
	seen := make(map[string]bool, len(providers))
	var out []string
	for _, p := range providers {
		if seen[p.Location] {
			continue
		}
		seen[p.Location] = true
		out = append(out, p.Location)
	}
	return out
}

func matchesSearch(p repository.Provider, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Profession), q) {
		return true
	}
	for _, skill := range p.Skills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

func matchesLocation(p repository.Provider, location string) bool {
	if location == "" {
		return true // no filter = all locations pass
	}
	return p.Location == location
}

// sortProviders sorts in place with a stable sort so equal ratings keep
// their relative roster order.
func (e *Engine) sortProviders(rows []repository.Provider, key SortKey) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch key {
		case SortNameAsc:
			return e.coll.CompareString(rows[i].Name, rows[j].Name) < 0
		default:
			return rows[i].Rating > rows[j].Rating
		}
	})
}
