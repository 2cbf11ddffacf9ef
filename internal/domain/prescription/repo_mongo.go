package prescription

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
	return &repoMongo{col: database.Collection("prescription")}
}

func (r *repoMongo) Create(ctx context.Context, p *Prescription) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *repoMongo) List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*Prescription, error) {
	cur, err := r.col.Find(ctx, filter.BSON(), store.FindOptions(page))
	if err != nil {
		return nil, err
	}
	out := []*Prescription{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
