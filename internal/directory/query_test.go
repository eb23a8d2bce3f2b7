package directory

import (
	"testing"

	"golang.org/x/text/language"

	"localconnect/internal/database/repository"
)

// ---------------------------------------------------------------------------
// Test data helpers
// ---------------------------------------------------------------------------

func testProviders() []repository.Provider {
	return []repository.Provider{
		{ID: "1", Name: "Alice Carpenter", Profession: "Carpenter", Location: "Austin", Rating: 4.8, Skills: []string{"wood"}},
		{ID: "2", Name: "Bob Plumber", Profession: "Plumber", Location: "Austin", Rating: 4.8, Skills: []string{"pipes"}},
		{ID: "3", Name: "Carla Diaz", Profession: "Electrician", Location: "New York", Rating: 4.9, Skills: []string{"wiring", "lighting"}},
		{ID: "4", Name: "Dave Son", Profession: "Painter", Location: "New", Rating: 3.5, Skills: nil},
	}
}

func ids(rows []repository.Provider) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []repository.Provider, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIDs, want)
		}
	}
}

func englishEngine() *Engine {
	return NewEngine(language.English)
}

// ---------------------------------------------------------------------------
// Filter tests
// ---------------------------------------------------------------------------

func TestDeriveViewEmptyParamsReturnsEveryProvider(t *testing.T) {
	providers := testProviders()
	got := englishEngine().DeriveView(providers, Params{})
	if len(got) != len(providers) {
		t.Fatalf("expected %d providers, got %d", len(providers), len(got))
	}
	seen := map[string]int{}
	for _, p := range got {
		seen[p.ID]++
	}
	for _, p := range providers {
		if seen[p.ID] != 1 {
			t.Errorf("provider %s appeared %d times, want exactly once", p.ID, seen[p.ID])
		}
	}
}

func TestDeriveViewIsIdempotent(t *testing.T) {
	providers := testProviders()
	e := englishEngine()
	params := Params{Search: "e", Sort: SortNameAsc}
	first := e.DeriveView(providers, params)
	second := e.DeriveView(providers, params)
	assertIDs(t, second, ids(first)...)
}

func TestDeriveViewDoesNotMutateInput(t *testing.T) {
	providers := testProviders()
	englishEngine().DeriveView(providers, Params{Sort: SortNameAsc})
	assertIDs(t, providers, "1", "2", "3", "4")
}

func TestTextFilterMatchesSubstringCaseInsensitive(t *testing.T) {
	providers := testProviders()
	e := englishEngine()

	// profession substring
	got := e.DeriveView(providers, Params{Search: "plu"})
	assertIDs(t, got, "2")

	// name substring
	got = e.DeriveView(providers, Params{Search: "ALICE"})
	assertIDs(t, got, "1")

	// skill substring
	got = e.DeriveView(providers, Params{Search: "light"})
	assertIDs(t, got, "3")

	// substring, not word-boundary: "car" matches "Carpenter"
	got = e.DeriveView(providers, Params{Search: "car"})
	if len(got) == 0 {
		t.Fatal("expected 'car' to match Carpenter as a substring")
	}
}

func TestTextFilterNoMatch(t *testing.T) {
	got := englishEngine().DeriveView(testProviders(), Params{Search: "roofing"})
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}

func TestLocationFilterIsExactMatch(t *testing.T) {
	providers := testProviders()
	e := englishEngine()

	// "New" must not match "New York"
	got := e.DeriveView(providers, Params{Location: "New"})
	assertIDs(t, got, "4")

	got = e.DeriveView(providers, Params{Location: "New York"})
	assertIDs(t, got, "3")

	// case-sensitive
	got = e.DeriveView(providers, Params{Location: "austin"})
	if len(got) != 0 {
		t.Fatalf("location match must be case-sensitive, got %v", ids(got))
	}
}

func TestFiltersComposeWithAnd(t *testing.T) {
	got := englishEngine().DeriveView(testProviders(), Params{Search: "pipes", Location: "Austin"})
	assertIDs(t, got, "2")

	got = englishEngine().DeriveView(testProviders(), Params{Search: "pipes", Location: "New York"})
	if len(got) != 0 {
		t.Fatalf("AND composition violated, got %v", ids(got))
	}
}

func TestDeriveViewEmptyRoster(t *testing.T) {
	got := englishEngine().DeriveView(nil, Params{Search: "x"})
	if len(got) != 0 {
		t.Fatalf("empty roster should derive empty view, got %v", ids(got))
	}
}

// ---------------------------------------------------------------------------
// Sort tests
// ---------------------------------------------------------------------------

func TestRatingSortIsStableOnTies(t *testing.T) {
	// Alice and Bob tie on 4.8; input order must be preserved.
	got := englishEngine().DeriveView(testProviders(), Params{Sort: SortRatingDesc})
	assertIDs(t, got, "3", "1", "2", "4")
}

func TestRatingTieEndToEndScenario(t *testing.T) {
	providers := []repository.Provider{
		{ID: "1", Name: "Alice Carpenter", Profession: "Carpenter", Location: "Austin", Rating: 4.8, Skills: []string{"wood"}},
		{ID: "2", Name: "Bob Plumber", Profession: "Plumber", Location: "Austin", Rating: 4.8, Skills: []string{"pipes"}},
	}
	e := englishEngine()

	got := e.DeriveView(providers, Params{Sort: SortRatingDesc})
	assertIDs(t, got, "1", "2")

	got = e.DeriveView(providers, Params{Search: "carp"})
	assertIDs(t, got, "1")
}

func TestNameSortAscending(t *testing.T) {
	got := englishEngine().DeriveView(testProviders(), Params{Sort: SortNameAsc})
	assertIDs(t, got, "1", "2", "3", "4")
}

func TestNameSortIsLocaleAware(t *testing.T) {
	providers := []repository.Provider{
		{ID: "z", Name: "Zoe"},
		{ID: "e", Name: "Émile"},
		{ID: "a", Name: "Adam"},
	}
	// Byte-wise ordering would push "Émile" after "Zoe".
	got := englishEngine().DeriveView(providers, Params{Sort: SortNameAsc})
	assertIDs(t, got, "a", "e", "z")
}

// ---------------------------------------------------------------------------
// Locations
// ---------------------------------------------------------------------------

func TestLocationsFirstSeenOrder(t *testing.T) {
	providers := testProviders()
	got := Locations(providers)
	want := []string{"Austin", "New York", "New"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLocationsEmptyRoster(t *testing.T) {
	if got := Locations(nil); len(got) != 0 {
		t.Fatalf("expected no locations, got %v", got)
	}
}
