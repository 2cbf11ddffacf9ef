package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter accumulates query constraints from optional request parameters.
// Empty parameter values contribute nothing, so an untouched filter matches
// every document. All terms combine with logical AND.
type Filter bson.M

func NewFilter() Filter {
	return Filter{}
}

// Eq adds an exact-match constraint when value is non-empty.
func (f Filter) Eq(field, value string) Filter {
	if value != "" {
		f[field] = value
	}
	return f
}

// Contains adds a case-insensitive substring constraint when substr is
// non-empty.
func (f Filter) Contains(field, substr string) Filter {
	if substr != "" {
		f[field] = bson.M{"$regex": regexp.QuoteMeta(substr), "$options": "i"}
	}
	return f
}

// BSON returns the filter as a driver query document.
func (f Filter) BSON() bson.M {
	return bson.M(f)
}
