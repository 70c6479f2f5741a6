package content

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode converts store rows into typed records
func Decode[T any](rows []Row) ([]T, error) {
	items := make([]T, 0, len(rows))
	for i, row := range rows {
		var item T
		if err := DecodeRow(row, &item); err != nil {
			return nil, errors.Wrapf(err, "failed to decode row %d", i)
		}
		items = append(items, item)
	}
	return items, nil
}

// DecodeRow converts a single row into v
func DecodeRow(row Row, v interface{}) error {
	b, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
