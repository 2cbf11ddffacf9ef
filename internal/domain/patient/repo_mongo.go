package patient

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type repoMongo struct {
	col *mongo.Collection
}

func NewRepo(database *mongo.Database) Repository {
	return &repoMongo{col: database.Collection("patient")}
}

func (r *repoMongo) Create(ctx context.Context, p *Patient) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *repoMongo) GetByID(ctx context.Context, id string) (*Patient, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	var p Patient
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoMongo) List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*Patient, error) {
	cur, err := r.col.Find(ctx, filter.BSON(), store.FindOptions(page))
	if err != nil {
		return nil, err
	}
	out := []*Patient{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
