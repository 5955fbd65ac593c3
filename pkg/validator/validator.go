package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator with the domain validations registered
func New() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("item_status", validateItemStatus)
	v.RegisterValidation("item_priority", validateItemPriority)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

func validateItemStatus(fl validator.FieldLevel) bool {
	return entities.ValidActionItemStatus(fl.Field().String())
}

func validateItemPriority(fl validator.FieldLevel) bool {
	return entities.ValidActionItemPriority(fl.Field().String())
}
