package validators

import "time"

type BookingCreateRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type BookingCompleteRequest struct {
	Review string `json:"review" validate:"omitempty,max=2000"`
	Rating int    `json:"rating" validate:"required,rating_value"`
}

type MarkPaidRequest struct {
	UTRNumber string `json:"utr_number" validate:"omitempty,max=60"`
}

func ValidateBookingCreate(req *BookingCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		errors = append(errors, ValidationError{
			Field:   "end_date",
			Tag:     "date_range",
			Message: "end date must not be before start date",
		})
	}

	return errors
}

func ValidateBookingComplete(req *BookingCompleteRequest) ValidationErrors {
	return ValidateStruct(req)
}
