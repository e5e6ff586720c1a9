package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/ielts-prep/reading-test-service/internal/errors"
	"github.com/ielts-prep/reading-test-service/internal/models"
)

// Validator wraps go-playground struct validation with the domain's custom
// rules registered.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	registerCustomValidators(validate)
	return &Validator{validate: validate}
}

// Validate validates struct tags and converts failures into the shared
// ValidationErrors type.
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		if errs := apperrors.ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", validateQuestionType)

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuestionType(fl validator.FieldLevel) bool {
	validTypes := []models.QuestionType{
		models.MultipleChoice,
		models.TrueFalseNotGiven,
		models.FillBlank,
		models.Matching,
		models.WrittenAnswer,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}
