package emr

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type repoMongo struct {
	col *mongo.Collection
}

func NewRepo(database *mongo.Database) Repository {
	return &repoMongo{col: database.Collection("emr")}
}

func (r *repoMongo) Create(ctx context.Context, record *EMR) error {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, record)
	return err
}

func (r *repoMongo) List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*EMR, error) {
	cur, err := r.col.Find(ctx, filter.BSON(), store.FindOptions(page))
	if err != nil {
		return nil, err
	}
	out := []*EMR{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
