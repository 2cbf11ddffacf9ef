package patient

import (
	"context"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// ListPatients narrows by tenant and by a case-insensitive substring of the
// patient's full name; either dimension is open when the parameter is empty.
func (s *Service) ListPatients(ctx context.Context, tenantID, search string, page pagination.Params) ([]*Patient, error) {
	filter := store.NewFilter().
		Eq("tenant_id", tenantID).
		Contains("full_name", search)
	return s.patients.List(ctx, filter, page)
}
