package validators

type VehicleCreateRequest struct {
	Title         string  `json:"title" form:"title" validate:"required,min=2,max=120"`
	Type          string  `json:"type" form:"type" validate:"required,vehicle_type"`
	Description   string  `json:"description" form:"description" validate:"omitempty,max=2000"`
	ModelYear     string  `json:"model_year" form:"model_year" validate:"omitempty,max=10"`
	Mileage       string  `json:"mileage" form:"mileage" validate:"omitempty,max=30"`
	Location      string  `json:"location" form:"location" validate:"required,min=2,max=120"`
	PricePerDay   float64 `json:"price_per_day" form:"price_per_day" validate:"gte=0"`
	PricePerWeek  float64 `json:"price_per_week" form:"price_per_week" validate:"gte=0"`
	PricePerMonth float64 `json:"price_per_month" form:"price_per_month" validate:"gte=0"`
}

type VehicleUpdateRequest struct {
	Title         string  `json:"title" form:"title" validate:"required,min=2,max=120"`
	Type          string  `json:"type" form:"type" validate:"required,vehicle_type"`
	Description   string  `json:"description" form:"description" validate:"omitempty,max=2000"`
	ModelYear     string  `json:"model_year" form:"model_year" validate:"omitempty,max=10"`
	Mileage       string  `json:"mileage" form:"mileage" validate:"omitempty,max=30"`
	Location      string  `json:"location" form:"location" validate:"required,min=2,max=120"`
	PricePerDay   float64 `json:"price_per_day" form:"price_per_day" validate:"gte=0"`
	PricePerWeek  float64 `json:"price_per_week" form:"price_per_week" validate:"gte=0"`
	PricePerMonth float64 `json:"price_per_month" form:"price_per_month" validate:"gte=0"`
}

func ValidateVehicleCreate(req *VehicleCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateVehicleUpdate(req *VehicleUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
