package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("vehicle_type", validateVehicleType)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("rating_value", validateRatingValue)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

func (e ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(e))
	for _, err := range e {
		m[err.Field] = err.Message
	}
	return m
}

// ValidateStruct runs tag validation and converts the result into
// field-level errors.
func ValidateStruct(s interface{}) ValidationErrors {
	var errors ValidationErrors

	if err := validate.Struct(s); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				errors = append(errors, ValidationError{
					Field:   strings.ToLower(fe.Field()),
					Tag:     fe.Tag(),
					Message: messageForTag(fe),
				})
			}
		}
	}

	return errors
}

func messageForTag(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "object_id":
		return fmt.Sprintf("%s must be a valid ID", field)
	case "vehicle_type":
		return fmt.Sprintf("%s must be one of: bike, scooter, ev", field)
	case "user_role":
		return fmt.Sprintf("%s must be renter or owner", field)
	case "rating_value":
		return fmt.Sprintf("%s must be between 1 and 5", field)
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func validateObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}

func validateVehicleType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "bike", "scooter", "ev":
		return true
	}
	return false
}

func validateUserRole(fl validator.FieldLevel) bool {
	// Admins are provisioned out of band, never via registration.
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "renter", "owner":
		return true
	}
	return false
}

func validateRatingValue(fl validator.FieldLevel) bool {
	rating := fl.Field().Int()
	return rating >= 1 && rating <= 5
}
