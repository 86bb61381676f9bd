package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	UserRoleRenter UserRole = "renter"
	UserRoleOwner  UserRole = "owner"
	UserRoleAdmin  UserRole = "admin"
)

// NormalizeRole maps raw role input to a UserRole, tolerating casing
// and surrounding whitespace from older records.
func NormalizeRole(role string) UserRole {
	return UserRole(strings.ToLower(strings.TrimSpace(role)))
}

type User struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name" validate:"required"`
	Email              string             `json:"email" bson:"email" validate:"required,email"`
	Password           string             `json:"-" bson:"password"`
	Role               UserRole           `json:"role" bson:"role" default:"renter"`
	GovIDFile          string             `json:"gov_id_file" bson:"gov_id_file"`
	DrivingLicenseFile string             `json:"driving_license_file" bson:"driving_license_file"`
	IsVerified         bool               `json:"is_verified" bson:"is_verified" default:"false"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// UserSummary is the counterparty view embedded in booking listings.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
