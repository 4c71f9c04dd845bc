package models

import (
	"iter"
	"slices"
	"strings"
)

// MatchFunc reports whether a stored name matches a query.
type MatchFunc func(stored, query string) bool

// ExactMatch compares names with ordinal, case-sensitive equality.
func ExactMatch(stored, query string) bool { return stored == query }

// FoldMatch compares names ignoring Unicode case.
func FoldMatch(stored, query string) bool { return strings.EqualFold(stored, query) }

// Matcher returns FoldMatch when ignoreCase is set, ExactMatch otherwise.
func Matcher(ignoreCase bool) MatchFunc {
	if ignoreCase {
		return FoldMatch
	}
	return ExactMatch
}

// Collection is an ordered sequence of records of a single variant.
// Names are not unique; lookups return the earliest inserted match.
// A nil *Collection behaves as an empty one for reads.
type Collection[R Record[R]] struct {
	items []R
}

// NewCollection returns a collection holding items in order.
func NewCollection[R Record[R]](items ...R) *Collection[R] {
	return &Collection[R]{items: slices.Clone(items)}
}

// Len returns the number of records.
func (c *Collection[R]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// All yields records in insertion order with their zero-based index.
func (c *Collection[R]) All() iter.Seq2[int, R] {
	return func(yield func(int, R) bool) {
		if c == nil {
			return
		}
		for i, r := range c.items {
			if !yield(i, r) {
				return
			}
		}
	}
}

// At returns the record at index i. It panics when i is out of range.
func (c *Collection[R]) At(i int) R {
	return c.items[i]
}

// Add appends r.
func (c *Collection[R]) Add(r R) {
	c.items = append(c.items, r)
}

// Index returns the position of the first record whose name matches, or -1.
func (c *Collection[R]) Index(name string, match MatchFunc) int {
	if c == nil {
		return -1
	}
	if match == nil {
		match = ExactMatch
	}
	return slices.IndexFunc(c.items, func(r R) bool {
		return match(r.RecordName(), name)
	})
}

// Find returns the first record whose name matches.
func (c *Collection[R]) Find(name string, match MatchFunc) (R, bool) {
	i := c.Index(name, match)
	if i < 0 {
		var zero R
		return zero, false
	}
	return c.items[i], true
}

// Remove deletes the record with r's identity and reports whether it was present.
func (c *Collection[R]) Remove(r R) bool {
	if c == nil {
		return false
	}
	id := r.RecordID()
	i := slices.IndexFunc(c.items, func(x R) bool { return x.RecordID() == id })
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}
