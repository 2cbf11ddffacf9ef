package directory

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id string) (*Doctor, error)
	List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*Doctor, error)
	// UpdateFields merges the given partial document into the doctor and
	// returns the updated record.
	UpdateFields(ctx context.Context, id string, fields bson.M) (*Doctor, error)
}

type FacilityRepository interface {
	Create(ctx context.Context, f *Facility) error
	List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*Facility, error)
}
