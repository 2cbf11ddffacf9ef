package scheduling

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
	return &repoMongo{col: database.Collection("appointment")}
}

func (r *repoMongo) Create(ctx context.Context, a *Appointment) error {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *repoMongo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	var a Appointment
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoMongo) List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*Appointment, error) {
	cur, err := r.col.Find(ctx, filter.BSON(), store.FindOptions(page))
	if err != nil {
		return nil, err
	}
	out := []*Appointment{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repoMongo) Count(ctx context.Context, filter store.Filter) (int64, error) {
	return r.col.CountDocuments(ctx, filter.BSON())
}
