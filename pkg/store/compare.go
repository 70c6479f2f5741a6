package store

import (
	"strings"
	"time"
)

// compareValues orders two decoded JSON values. Values of different kinds
// order nil < bool < number < string < anything else. Numbers compare
// numerically, strings that both parse as RFC 3339 compare as times.
func compareValues(a, b interface{}) int {
	if ra, rb := rank(a), rank(b); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch va := a.(type) {
	case bool:
		vb := b.(bool)
		switch {
		case va == vb:
			return 0
		case !va:
			return -1
		default:
			return 1
		}
	case string:
		vb := b.(string)
		if ta, err := time.Parse(time.RFC3339Nano, va); err == nil {
			if tb, err := time.Parse(time.RFC3339Nano, vb); err == nil {
				return ta.Compare(tb)
			}
		}
		return strings.Compare(va, vb)
	}
	if fa, ok := toFloat(a); ok {
		fb, _ := toFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
	}
	return 0
}

func rank(v interface{}) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case string:
		return 3
	}
	if _, ok := toFloat(v); ok {
		return 2
	}
	return 4
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
