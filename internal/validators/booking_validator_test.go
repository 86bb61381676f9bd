package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateBookingCreate_DateRange(t *testing.T) {
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	errs := ValidateBookingCreate(&BookingCreateRequest{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, -1),
	})
	assert.NotEmpty(t, errs)
	assert.Equal(t, "date_range", errs[0].Tag)

	errs = ValidateBookingCreate(&BookingCreateRequest{
		StartDate: start,
		EndDate:   start,
	})
	assert.Empty(t, errs)
}

func TestValidateBookingCreate_MissingDates(t *testing.T) {
	errs := ValidateBookingCreate(&BookingCreateRequest{})
	assert.Len(t, errs, 2)
}

func TestValidateBookingComplete_Rating(t *testing.T) {
	errs := ValidateBookingComplete(&BookingCompleteRequest{Rating: 6})
	assert.NotEmpty(t, errs)

	errs = ValidateBookingComplete(&BookingCompleteRequest{Rating: 4, Review: "great"})
	assert.Empty(t, errs)
}

func TestValidateRegister_Role(t *testing.T) {
	base := RegisterRequest{Name: "A B", Email: "a@example.com", Password: "secret1"}

	req := base
	req.Role = "Owner"
	assert.Empty(t, ValidateRegister(&req))

	req = base
	req.Role = "admin"
	assert.NotEmpty(t, ValidateRegister(&req))
}
