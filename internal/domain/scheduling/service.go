package scheduling

import (
	"context"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	if a.DoctorID == "" {
		return fmt.Errorf("doctor_id is required")
	}
	if a.PatientID == "" {
		return fmt.Errorf("patient_id is required")
	}
	if a.StartTime == "" {
		return fmt.Errorf("start_time is required")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("status must be one of scheduled, completed, cancelled, no_show")
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, doctorID, tenantID, status string, page pagination.Params) ([]*Appointment, error) {
	filter := store.NewFilter().
		Eq("doctor_id", doctorID).
		Eq("tenant_id", tenantID).
		Eq("status", status)
	return s.appointments.List(ctx, filter, page)
}

// Metrics computes the dashboard counter cards from appointment counts,
// optionally scoped to one doctor and/or tenant.
func (s *Service) Metrics(ctx context.Context, doctorID, tenantID string) (*Dashboard, error) {
	scoped := func(status string) store.Filter {
		return store.NewFilter().
			Eq("doctor_id", doctorID).
			Eq("tenant_id", tenantID).
			Eq("status", status)
	}

	total, err := s.appointments.Count(ctx, scoped(""))
	if err != nil {
		return nil, err
	}
	scheduled, err := s.appointments.Count(ctx, scoped(StatusScheduled))
	if err != nil {
		return nil, err
	}
	completed, err := s.appointments.Count(ctx, scoped(StatusCompleted))
	if err != nil {
		return nil, err
	}
	cancelled, err := s.appointments.Count(ctx, scoped(StatusCancelled))
	if err != nil {
		return nil, err
	}

	return &Dashboard{Cards: []Metric{
		{Label: "Total Appointments", Value: float64(total)},
		{Label: "Scheduled", Value: float64(scheduled)},
		{Label: "Completed", Value: float64(completed)},
		{Label: "Cancelled", Value: float64(cancelled)},
	}}, nil
}
