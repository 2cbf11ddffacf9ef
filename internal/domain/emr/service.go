package emr

import (
	"context"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Service struct {
	records Repository
}

func NewService(records Repository) *Service {
	return &Service{records: records}
}

func (s *Service) CreateEMR(ctx context.Context, record *EMR) error {
	if record.DoctorID == "" {
		return fmt.Errorf("doctor_id is required")
	}
	if record.PatientID == "" {
		return fmt.Errorf("patient_id is required")
	}
	return s.records.Create(ctx, record)
}

func (s *Service) ListByPatient(ctx context.Context, patientID, tenantID string, page pagination.Params) ([]*EMR, error) {
	filter := store.NewFilter().
		Eq("patient_id", patientID).
		Eq("tenant_id", tenantID)
	return s.records.List(ctx, filter, page)
}

// GenerateNote extracts structured sections from a raw visit transcript
// without persisting anything.
func (s *Service) GenerateNote(transcript, style string) (*Note, error) {
	return ExtractNote(transcript, style)
}
