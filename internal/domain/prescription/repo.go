package prescription

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	List(ctx context.Context, filter store.Filter, page pagination.Params) ([]*Prescription, error)
}
