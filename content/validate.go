package content

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var strict = jsoniter.Config{
	EscapeHTML:            true,
	SortMapKeys:           true,
	DisallowUnknownFields: true,
}.Froze()

// Validate checks that every field of row exists in the collection's record
// type and carries a value of the right type. Missing fields are fine, so a
// partial row used as an update patch validates too.
func Validate(c Collection, row Row) error {
	var v interface{}
	switch c {
	case CollectionPortfolio:
		v = &PortfolioItem{}
	case CollectionVideos:
		v = &Video{}
	case CollectionCollaborations:
		v = &Collaboration{}
	case CollectionContactSubmissions:
		v = &ContactSubmission{}
	default:
		return errors.Errorf("unknown collection %q", c)
	}

	// every table carries created_at
	fields := row.Clone()
	delete(fields, FieldCreatedAt)

	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := strict.Unmarshal(b, v); err != nil {
		return errors.Wrapf(err, "invalid %s row", c)
	}
	return nil
}
