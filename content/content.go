// contains data structures that describe the records served by showcase
package content

import (
	"strconv"
)

// Collection names a table in the data store
type Collection string

const (
	// CollectionPortfolio portfolio pieces
	CollectionPortfolio Collection = "portfolio_items"
	// CollectionVideos video clips
	CollectionVideos Collection = "videos"
	// CollectionCollaborations brand collaborations
	CollectionCollaborations Collection = "collaborations"
	// CollectionContactSubmissions messages sent through the contact form
	CollectionContactSubmissions Collection = "contact_submissions"
)

// Collections lists every collection managed through the admin surface
var Collections = []Collection{
	CollectionPortfolio,
	CollectionVideos,
	CollectionCollaborations,
	CollectionContactSubmissions,
}

// Field names shared across collections
const (
	FieldID           = "id"
	FieldCategory     = "category"
	FieldDisplayOrder = "display_order"
	FieldIsPublished  = "is_published"
	FieldIsFeatured   = "is_featured"
	FieldIsRead       = "is_read"
	FieldCreatedAt    = "created_at"
)

// Valid reports whether c is a known collection
func (c Collection) Valid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

// Publishable collections carry an is_published flag
func (c Collection) Publishable() bool {
	return c.Valid() && c != CollectionContactSubmissions
}

// DefaultOrder is the field and direction the admin lists a collection by
func (c Collection) DefaultOrder() (field string, descending bool) {
	if c == CollectionContactSubmissions {
		return FieldCreatedAt, true
	}
	return FieldDisplayOrder, false
}

func (c Collection) String() string {
	return string(c)
}

// Row is a raw record as exchanged with a store
type Row map[string]interface{}

// ID returns the row id as a string
func (r Row) ID() string {
	switch v := r[FieldID].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// Bool returns a boolean field, false when missing
func (r Row) Bool(field string) bool {
	v, ok := r[field].(bool)
	return ok && v
}

// Clone returns a shallow copy
func (r Row) Clone() Row {
	c := make(Row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Merge returns a copy of r with all fields of patch applied
func (r Row) Merge(patch Row) Row {
	c := r.Clone()
	for k, v := range patch {
		c[k] = v
	}
	return c
}
