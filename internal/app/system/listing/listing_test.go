package listing_test

import (
	"testing"

	"github.com/ceitm/platform/internal/app/system/listing"
)

type item struct {
	id       int
	name     string
	category string
}

func (i item) EntityName() string     { return i.name }
func (i item) EntityCategory() string { return i.category }

func catalog() []item {
	return []item{
		{id: 1, name: "Tacos El Inge", category: "COMIDA"},
		{id: 2, name: "Gym Fuerza", category: "DEPORTE"},
		{id: 3, name: "Óptica Luz", category: "SALUD"},
		{id: 4, name: "Café Binario", category: "COMIDA"},
	}
}

func ids(items []item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVisibleNoFilters(t *testing.T) {
	c := listing.NewController(catalog())
	if got := ids(c.Visible()); !equalIDs(got, []int{1, 2, 3, 4}) {
		t.Errorf("neutral filters: got %v, want full list in order", got)
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	c := listing.NewController(catalog())
	c.SetSearchTerm("gym")
	if got := ids(c.Visible()); !equalIDs(got, []int{2}) {
		t.Errorf("search 'gym': got %v, want [2]", got)
	}

	c.SetSearchTerm("CAF")
	if got := ids(c.Visible()); !equalIDs(got, []int{4}) {
		t.Errorf("search 'CAF': got %v, want [4]", got)
	}

	// Substring, not prefix.
	c.SetSearchTerm("inge")
	if got := ids(c.Visible()); !equalIDs(got, []int{1}) {
		t.Errorf("search 'inge': got %v, want [1]", got)
	}
}

func TestCategoryIsExactMatch(t *testing.T) {
	c := listing.NewController(catalog())

	c.SetCategory("COMIDA")
	if got := ids(c.Visible()); !equalIDs(got, []int{1, 4}) {
		t.Errorf("category COMIDA: got %v, want [1 4]", got)
	}

	// A SALUD entity is excluded under COMIDA, included under SALUD and all.
	c.SetCategory("SALUD")
	if got := ids(c.Visible()); !equalIDs(got, []int{3}) {
		t.Errorf("category SALUD: got %v, want [3]", got)
	}
	c.SetCategory(listing.AllCategories)
	if got := ids(c.Visible()); !equalIDs(got, []int{1, 2, 3, 4}) {
		t.Errorf("category all: got %v, want full list", got)
	}
}

func TestUnknownCategoryMatchesNothing(t *testing.T) {
	c := listing.NewController(catalog())
	c.SetCategory("MASCOTAS")
	if got := c.Visible(); len(got) != 0 {
		t.Errorf("unknown category: got %v, want empty", ids(got))
	}
}

func TestFiltersCompose(t *testing.T) {
	c := listing.NewController(catalog())
	c.SetSearchTerm("a")
	c.SetCategory("COMIDA")
	// Both Tacos El Inge and Café Binario contain "a" and are COMIDA.
	if got := ids(c.Visible()); !equalIDs(got, []int{1, 4}) {
		t.Errorf("composed filters: got %v, want [1 4]", got)
	}

	c.SetSearchTerm("gym")
	if got := c.Visible(); len(got) != 0 {
		t.Errorf("gym+COMIDA: got %v, want empty", ids(got))
	}
}

func TestClearFiltersRestoresFullListAtomically(t *testing.T) {
	c := listing.NewController(catalog())
	c.SetSearchTerm("gym")
	c.SetCategory("SALUD")
	c.ClearFilters()
	if got := ids(c.Visible()); !equalIDs(got, []int{1, 2, 3, 4}) {
		t.Errorf("after ClearFilters: got %v, want full list in order", got)
	}
	if c.SearchTerm() != "" || c.Category() != listing.AllCategories {
		t.Error("ClearFilters must reset both filters together")
	}
}

func TestSetSearchTermIdempotent(t *testing.T) {
	c := listing.NewController(catalog())
	c.SetSearchTerm("tacos")
	first := ids(c.Visible())
	c.SetSearchTerm("tacos")
	second := ids(c.Visible())
	if !equalIDs(first, second) {
		t.Errorf("repeated SetSearchTerm changed the result: %v then %v", first, second)
	}
}

func TestVisibleIsSubsetAndDoesNotMutateSource(t *testing.T) {
	src := catalog()
	c := listing.NewController(src)
	c.SetSearchTerm("o")
	vis := c.Visible()
	if len(vis) > len(src) {
		t.Fatal("visible set larger than source")
	}
	if !equalIDs(ids(src), []int{1, 2, 3, 4}) {
		t.Error("source list mutated by Visible")
	}
}

func TestDetailSelection(t *testing.T) {
	c := listing.NewController(catalog())
	if _, open := c.Detail(); open {
		t.Fatal("detail should start closed")
	}

	c.Select(catalog()[1])
	d, open := c.Detail()
	if !open || d.id != 2 {
		t.Fatalf("after Select: open=%v detail=%v", open, d)
	}

	// Selecting another entity replaces the first; at most one open.
	c.Select(catalog()[0])
	d, _ = c.Detail()
	if d.id != 1 {
		t.Errorf("second Select: got id %d, want 1", d.id)
	}

	c.CloseDetail()
	if _, open := c.Detail(); open {
		t.Error("CloseDetail should return to the closed state")
	}
}

func TestStaleSelectionTolerated(t *testing.T) {
	c := listing.NewController(catalog())
	c.Select(catalog()[2])

	// The selected entity disappears from upstream data.
	c.SetItems([]item{{id: 9, name: "Nuevo", category: "VARIOS"}})

	d, open := c.Detail()
	if !open || d.id != 3 {
		t.Errorf("stale selection: open=%v id=%d, want captured entity 3", open, d.id)
	}
}

func TestSetCategoryEmptyMeansAll(t *testing.T) {
	c := listing.NewController(catalog())
	c.SetCategory("")
	if c.Category() != listing.AllCategories {
		t.Errorf("empty category: got %q, want sentinel", c.Category())
	}
}
