package directory

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

// -- Doctor Repository --

type doctorRepoMongo struct {
	col *mongo.Collection
}

func NewDoctorRepo(database *mongo.Database) DoctorRepository {
	return &doctorRepoMongo{col: database.Collection("doctor")}
}

func (r *doctorRepoMongo) Create(ctx context.Context, d *Doctor) error {
	d.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, d)
	return err
}

func (r *doctorRepoMongo) GetByID(ctx context.Context, id string) (*Doctor, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	var d Doctor
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *doctorRepoMongo) List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*Doctor, error) {
	cur, err := r.col.Find(ctx, filter.BSON(), store.FindOptions(page))
	if err != nil {
		return nil, err
	}
	out := []*Doctor{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *doctorRepoMongo) UpdateFields(ctx context.Context, id string, fields bson.M) (*Doctor, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	var d Doctor
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// -- Facility Repository --

type facilityRepoMongo struct {
	col *mongo.Collection
}

func NewFacilityRepo(database *mongo.Database) FacilityRepository {
	return &facilityRepoMongo{col: database.Collection("facility")}
}

func (r *facilityRepoMongo) Create(ctx context.Context, f *Facility) error {
	f.ID = primitive.NewObjectID()
	f.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, f)
	return err
}

func (r *facilityRepoMongo) List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*Facility, error) {
	cur, err := r.col.Find(ctx, filter.BSON(), store.FindOptions(page))
	if err != nil {
		return nil, err
	}
	out := []*Facility{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

