package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleType string

const (
	VehicleTypeBike    VehicleType = "bike"
	VehicleTypeScooter VehicleType = "scooter"
	VehicleTypeEV      VehicleType = "ev"
)

type Vehicle struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID       primitive.ObjectID `json:"owner_id" bson:"owner_id" validate:"required"`
	Title         string             `json:"title" bson:"title" validate:"required"`
	Type          VehicleType        `json:"type" bson:"type" default:"bike"`
	Description   string             `json:"description" bson:"description"`
	ModelYear     string             `json:"model_year" bson:"model_year"`
	Mileage       string             `json:"mileage" bson:"mileage"`
	Location      string             `json:"location" bson:"location" validate:"required"`
	PricePerDay   float64            `json:"price_per_day" bson:"price_per_day" default:"0"`
	PricePerWeek  float64            `json:"price_per_week" bson:"price_per_week" default:"0"`
	PricePerMonth float64            `json:"price_per_month" bson:"price_per_month" default:"0"`
	Images        []string           `json:"images" bson:"images"`
	RCFile        string             `json:"rc_file" bson:"rc_file"`
	InsuranceFile string             `json:"insurance_file" bson:"insurance_file"`
	PollutionFile string             `json:"pollution_file" bson:"pollution_file"`
	IsVerified    bool               `json:"is_verified" bson:"is_verified" default:"false"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
