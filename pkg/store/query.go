package store

import (
	"github.com/foomo/showcase/content"
)

type (
	// Query describes a read: equality filters, one sort key and a row limit
	Query struct {
		Filters []Filter
		Order   *Order
		// Limit caps the number of rows, zero means no limit
		Limit int
	}
	// Filter matches rows whose Field equals Value
	Filter struct {
		Field string
		Value interface{}
	}
	// Order sorts rows by Field
	Order struct {
		Field      string
		Descending bool
	}
)

// NewQuery returns an empty query
func NewQuery() *Query {
	return &Query{}
}

// Published returns a query for published rows in display order
func Published() *Query {
	return NewQuery().
		Eq(content.FieldIsPublished, true).
		OrderBy(content.FieldDisplayOrder, false)
}

// Eq adds an equality filter
func (q *Query) Eq(field string, value interface{}) *Query {
	q.Filters = append(q.Filters, Filter{Field: field, Value: value})
	return q
}

// OrderBy sets the sort key
func (q *Query) OrderBy(field string, descending bool) *Query {
	q.Order = &Order{Field: field, Descending: descending}
	return q
}

// WithLimit sets the row limit
func (q *Query) WithLimit(limit int) *Query {
	q.Limit = limit
	return q
}

// Without returns a copy of q without the filters on field
func (q *Query) Without(field string) *Query {
	c := &Query{Limit: q.Limit}
	if q.Order != nil {
		o := *q.Order
		c.Order = &o
	}
	for _, f := range q.Filters {
		if f.Field != field {
			c.Filters = append(c.Filters, f)
		}
	}
	return c
}

// Matches reports whether row satisfies all filters
func (q *Query) Matches(row content.Row) bool {
	if q == nil {
		return true
	}
	for _, f := range q.Filters {
		if compareValues(row[f.Field], f.Value) != 0 {
			return false
		}
	}
	return true
}
