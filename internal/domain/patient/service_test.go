package patient

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[string]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[string]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	m.patients[p.ID.Hex()] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	if _, err := store.ParseID(id); err != nil {
		return nil, err
	}
	p, ok := m.patients[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) List(_ context.Context, filter store.Filter, _ pagination.Params) ([]*Patient, error) {
	f := filter.BSON()
	tenant, _ := f["tenant_id"].(string)
	var search string
	if re, ok := f["full_name"].(bson.M); ok {
		search, _ = re["$regex"].(string)
	}
	result := []*Patient{}
	for _, p := range m.patients {
		if tenant != "" && p.TenantID != tenant {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.FullName), strings.ToLower(search)) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

// -- Service Tests --

func TestService_CreatePatient(t *testing.T) {
	svc := newTestService()

	p := &Patient{FullName: "Maria Lopez", DOB: "1990-04-12", Gender: "female"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID.IsZero() {
		t.Error("expected assigned id")
	}
	if p.DOB != "1990-04-12" {
		t.Errorf("expected dob preserved as submitted, got %q", p.DOB)
	}
}

func TestService_CreatePatient_MissingName(t *testing.T) {
	svc := newTestService()

	if err := svc.CreatePatient(context.Background(), &Patient{Email: "m@x.test"}); err == nil {
		t.Error("expected error for missing full_name")
	}
}

func TestService_GetPatient_InvalidID(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetPatient(context.Background(), "xyz")
	if !errors.Is(err, store.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_GetPatient_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetPatient(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ListPatients_SearchByName(t *testing.T) {
	svc := newTestService()

	for _, p := range []*Patient{
		{FullName: "Maria Lopez"},
		{FullName: "Mario Rossi"},
		{FullName: "John Doe"},
	} {
		if err := svc.CreatePatient(context.Background(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	patients, err := svc.ListPatients(context.Background(), "", "mari", pagination.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 2 {
		t.Errorf("expected 2 matches for %q, got %d", "mari", len(patients))
	}
}

func TestService_ListPatients_Empty(t *testing.T) {
	svc := newTestService()

	patients, err := svc.ListPatients(context.Background(), "", "", pagination.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patients == nil || len(patients) != 0 {
		t.Errorf("expected empty slice, got %v", patients)
	}
}
