package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("exam_rank", validateExamRank)
	_ = v.RegisterValidation("category_code", validateCategoryCode)
	_ = v.RegisterValidation("seat_type", validateSeatType)
	_ = v.RegisterValidation("branch_code", validateBranchCode)
	_ = v.RegisterValidation("admission_year", validateAdmissionYear)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateExamRank validates a CET merit rank. Ranks are positive and the
// published merit lists never exceed a million candidates.
func validateExamRank(fl validator.FieldLevel) bool {
	rank := fl.Field().Int()
	return rank >= 1 && rank <= 1_000_000
}

// validateCategoryCode validates a caste or reservation code as printed in
// cutoff reports: letters and digits only (OPEN, OBC, NT1, TFWS, ...).
// Unknown codes are allowed; they simply match no cutoff rows.
func validateCategoryCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Za-z0-9]{1,20}$`, code)
	return matched
}

// validateSeatType validates the seat type letter code (H, O, S, AI)
func validateSeatType(fl validator.FieldLevel) bool {
	seatType := strings.ToUpper(fl.Field().String())
	validTypes := map[string]bool{
		"H":  true,
		"O":  true,
		"S":  true,
		"AI": true,
	}
	return validTypes[seatType]
}

// validateBranchCode validates a canonical branch code (CSE, IT, 5G, AIDS, ...)
func validateBranchCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Za-z0-9]{1,10}$`, code)
	return matched
}

// validateAdmissionYear validates a CAP admission year
func validateAdmissionYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 2000 && year <= 2100
}
