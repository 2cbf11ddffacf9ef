package scheduling

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*Appointment, error)
	Count(ctx context.Context, filter store.Filter) (int64, error)
}
