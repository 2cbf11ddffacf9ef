package prescription

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medication is one line item on a prescription. Every field is optional;
// the preview falls back to "Medicine" when the name is blank.
type Medication struct {
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
	Dose      string `bson:"dose,omitempty" json:"dose,omitempty"`
	Route     string `bson:"route,omitempty" json:"route,omitempty"`
	Frequency string `bson:"frequency,omitempty" json:"frequency,omitempty"`
	Duration  string `bson:"duration,omitempty" json:"duration,omitempty"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Prescription maps to the prescription collection.
type Prescription struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorID      string             `bson:"doctor_id" json:"doctor_id"`
	PatientID     string             `bson:"patient_id" json:"patient_id"`
	AppointmentID string             `bson:"appointment_id,omitempty" json:"appointment_id,omitempty"`
	Medications   []Medication       `bson:"medications,omitempty" json:"medications,omitempty"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	TenantID      string             `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
