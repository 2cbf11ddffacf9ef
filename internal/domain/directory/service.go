package directory

import (
	"context"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Service struct {
	doctors    DoctorRepository
	facilities FacilityRepository
}

func NewService(doctors DoctorRepository, facilities FacilityRepository) *Service {
	return &Service{doctors: doctors, facilities: facilities}
}

// -- Doctor --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if d.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if d.Email == "" {
		return fmt.Errorf("email is required")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, tenantID string, page pagination.Params) ([]*Doctor, error) {
	return s.doctors.List(ctx, store.NewFilter().Eq("tenant_id", tenantID), page)
}

// UpdateDoctor merges the provided fields into an existing doctor. The bool
// result reports whether anything was written; an empty update is a no-op,
// not an error.
func (s *Service) UpdateDoctor(ctx context.Context, id string, u *DoctorUpdate) (*Doctor, bool, error) {
	fields := u.Fields()
	if len(fields) == 0 {
		return nil, false, nil
	}
	d, err := s.doctors.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, false, err
	}
	return d, true, nil
}

// -- Facility --

func (s *Service) CreateFacility(ctx context.Context, f *Facility) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.facilities.Create(ctx, f)
}

func (s *Service) ListFacilities(ctx context.Context, tenantID string, page pagination.Params) ([]*Facility, error) {
	return s.facilities.List(ctx, store.NewFilter().Eq("tenant_id", tenantID), page)
}
