package directory

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor maps to the doctor collection.
type Doctor struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName    string             `bson:"full_name" json:"full_name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialty   string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	AvatarURL   string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Bio         string             `bson:"bio,omitempty" json:"bio,omitempty"`
	FacilityIDs []string           `bson:"facility_ids,omitempty" json:"facility_ids,omitempty"`
	TenantID    string             `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Facility maps to the facility collection.
type Facility struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	TenantID  string             `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// DoctorUpdate carries the fields a PATCH may change. Nil pointers mean the
// field was not mentioned and must stay untouched.
type DoctorUpdate struct {
	FullName    *string  `json:"full_name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Specialty   *string  `json:"specialty,omitempty"`
	AvatarURL   *string  `json:"avatar_url,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	FacilityIDs []string `json:"facility_ids,omitempty"`
}

// Fields returns the explicitly provided fields as a partial document.
func (u *DoctorUpdate) Fields() bson.M {
	set := bson.M{}
	if u.FullName != nil {
		set["full_name"] = *u.FullName
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Specialty != nil {
		set["specialty"] = *u.Specialty
	}
	if u.AvatarURL != nil {
		set["avatar_url"] = *u.AvatarURL
	}
	if u.Bio != nil {
		set["bio"] = *u.Bio
	}
	if u.FacilityIDs != nil {
		set["facility_ids"] = u.FacilityIDs
	}
	return set
}
