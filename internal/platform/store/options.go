package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

// FindOptions sorts by insertion recency (ObjectIDs embed their creation
// time, so _id descending is most-recent-first) and applies the requested
// window. A zero limit leaves the query unbounded.
func FindOptions(page pagination.Params) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}
	if page.Offset > 0 {
		opts.SetSkip(int64(page.Offset))
	}
	return opts
}
