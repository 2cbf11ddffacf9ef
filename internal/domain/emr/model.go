package emr

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EMR maps to the emr collection. All clinical sections are free text and
// optional; absent sections are stored and rendered as absent.
type EMR struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorID                string             `bson:"doctor_id" json:"doctor_id"`
	PatientID               string             `bson:"patient_id" json:"patient_id"`
	AppointmentID           string             `bson:"appointment_id,omitempty" json:"appointment_id,omitempty"`
	ChiefComplaint          string             `bson:"chief_complaint,omitempty" json:"chief_complaint,omitempty"`
	HistoryOfPresentIllness string             `bson:"history_of_present_illness,omitempty" json:"history_of_present_illness,omitempty"`
	ReviewOfSystems         string             `bson:"review_of_systems,omitempty" json:"review_of_systems,omitempty"`
	PhysicalExam            string             `bson:"physical_exam,omitempty" json:"physical_exam,omitempty"`
	Assessment              string             `bson:"assessment,omitempty" json:"assessment,omitempty"`
	Plan                    string             `bson:"plan,omitempty" json:"plan,omitempty"`
	Summary                 string             `bson:"summary,omitempty" json:"summary,omitempty"`
	TenantID                string             `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	CreatedAt               time.Time          `bson:"created_at" json:"created_at"`
}
