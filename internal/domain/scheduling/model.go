package scheduling

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses. Anything else is rejected at create time.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

var validStatuses = map[string]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusNoShow:    true,
}

// Appointment maps to the appointment collection. Start and end times are
// kept as the submitted ISO datetime strings.
type Appointment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorID   string             `bson:"doctor_id" json:"doctor_id"`
	PatientID  string             `bson:"patient_id" json:"patient_id"`
	FacilityID string             `bson:"facility_id,omitempty" json:"facility_id,omitempty"`
	StartTime  string             `bson:"start_time" json:"start_time"`
	EndTime    string             `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Status     string             `bson:"status" json:"status"`
	Reason     string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	TenantID   string             `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// Metric is a display-only dashboard card.
type Metric struct {
	Label     string     `bson:"label" json:"label"`
	Value     float64    `bson:"value" json:"value"`
	Trend     *float64   `bson:"trend,omitempty" json:"trend,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Dashboard is the metrics endpoint response.
type Dashboard struct {
	Cards []Metric `json:"cards"`
}
