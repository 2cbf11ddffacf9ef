package prescription

import (
	"context"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Service struct {
	prescriptions Repository
}

func NewService(prescriptions Repository) *Service {
	return &Service{prescriptions: prescriptions}
}

func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) error {
	if p.DoctorID == "" {
		return fmt.Errorf("doctor_id is required")
	}
	if p.PatientID == "" {
		return fmt.Errorf("patient_id is required")
	}
	return s.prescriptions.Create(ctx, p)
}

func (s *Service) ListPrescriptions(ctx context.Context, patientID, doctorID, tenantID string, page pagination.Params) ([]*Prescription, error) {
	filter := store.NewFilter().
		Eq("patient_id", patientID).
		Eq("doctor_id", doctorID).
		Eq("tenant_id", tenantID)
	return s.prescriptions.List(ctx, filter, page)
}
