package patient

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient maps to the patient collection. DOB is kept as the submitted
// YYYY-MM-DD string, never reinterpreted.
type Patient struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string             `bson:"full_name" json:"full_name"`
	DOB       string             `bson:"dob,omitempty" json:"dob,omitempty"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	TenantID  string             `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
