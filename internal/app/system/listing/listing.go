// Package listing implements the filtering and selection layer shared by the
// catalog-style pages (convenios, noticias): a text+category filter over an
// in-order entity list, a detail view that is open for at most one entity at
// a time, and a load guard that keeps late fetch results from overwriting
// newer ones.
//
// A Controller is owned by a single goroutine (in practice: built per request
// or per view); it does no locking of its own. The Loader and Cache types are
// safe for concurrent use.
package listing

import "strings"

// Entity is anything that can appear in a filtered listing.
type Entity interface {
	EntityName() string
	EntityCategory() string
}

// AllCategories is the category filter value meaning "no category filter".
// It is distinct from every real category identifier.
const AllCategories = "all"

// Controller owns the current filter state (free-text term, selected
// category, selected entity for the detail view) and derives the visible
// subset of its source list. It never mutates the source list and never
// caches the derived subset: Visible recomputes on each call.
type Controller[T Entity] struct {
	items    []T
	term     string
	category string

	// Detail state machine: detailOpen false means Closed; true means
	// Open(detail). Select/CloseDetail are the only transitions, so "at
	// most one open at a time" holds by construction.
	detailOpen bool
	detail     T
}

// NewController returns a controller over items with neutral filters and a
// closed detail view.
func NewController[T Entity](items []T) *Controller[T] {
	return &Controller[T]{items: items, category: AllCategories}
}

// SetItems replaces the source list. The detail selection is deliberately
// kept: a selection that refers to an entity no longer in the list is
// tolerated, and the detail view renders what was captured at Select time.
func (c *Controller[T]) SetItems(items []T) {
	c.items = items
}

// SetSearchTerm sets the free-text filter. Empty means no text filter.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.term = term
}

// SearchTerm returns the current free-text filter.
func (c *Controller[T]) SearchTerm() string { return c.term }

// SetCategory sets the category filter to AllCategories or a category
// identifier. Unknown identifiers are accepted and simply match nothing.
func (c *Controller[T]) SetCategory(id string) {
	if id == "" {
		id = AllCategories
	}
	c.category = id
}

// Category returns the current category filter.
func (c *Controller[T]) Category() string { return c.category }

// ClearFilters resets the text and category filters together to their
// neutral values. The detail selection is untouched.
func (c *Controller[T]) ClearFilters() {
	c.term = ""
	c.category = AllCategories
}

// Select opens the detail view on e, replacing any previous selection.
func (c *Controller[T]) Select(e T) {
	c.detail = e
	c.detailOpen = true
}

// CloseDetail returns the detail view to the closed state.
func (c *Controller[T]) CloseDetail() {
	var zero T
	c.detail = zero
	c.detailOpen = false
}

// Detail returns the currently selected entity, if the detail view is open.
func (c *Controller[T]) Detail() (T, bool) {
	return c.detail, c.detailOpen
}

// Visible returns the entities matching both filters, in source order.
// An entity is visible iff the lowercased name contains the lowercased
// term (or the term is empty) and its category equals the selected one
// (or the selection is AllCategories). Substring containment only; no
// tokenization, no fuzzing.
func (c *Controller[T]) Visible() []T {
	term := strings.ToLower(c.term)
	out := make([]T, 0, len(c.items))
	for _, e := range c.items {
		if term != "" && !strings.Contains(strings.ToLower(e.EntityName()), term) {
			continue
		}
		if c.category != AllCategories && e.EntityCategory() != c.category {
			continue
		}
		out = append(out, e)
	}
	return out
}
