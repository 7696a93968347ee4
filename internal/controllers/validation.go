package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Wealthy-grace/house-Property-service/internal/dtos"
	"github.com/Wealthy-grace/house-Property-service/internal/models"
	"github.com/Wealthy-grace/house-Property-service/internal/utils"
)

var (
	validate = newValidator()

	nlPostalCodeRe = regexp.MustCompile(`^\d{4}[A-Z]{2}$`)

	minRent = decimal.NewFromInt(100)
	maxRent = decimal.NewFromInt(5000)
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json field names instead of Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("nl_postalcode", func(fl validator.FieldLevel) bool {
		return nlPostalCodeRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("house_type", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseHouseType(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("location_type", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseLocationType(fl.Field().String())
		return ok
	})

	return v
}

// decodePropertyRequest parses and validates the full create/update payload.
// On failure it writes the 400 response itself and returns ok=false.
func decodePropertyRequest(w http.ResponseWriter, r *http.Request) (*dtos.PropertyRequest, bool) {
	var req dtos.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil,
		)
		return nil, false
	}

	details := validationDetails(validate.Struct(&req))
	details = append(details, decimalDetails(&req)...)
	if len(details) > 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", details,
		)
		return nil, false
	}
	return &req, true
}

func validationDetails(err error) []dtos.ValidationErrorDetail {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dtos.ValidationErrorDetail{{Field: "", Message: err.Error(), Code: "invalid"}}
	}

	details := make([]dtos.ValidationErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, dtos.ValidationErrorDetail{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Code:    fe.Tag(),
		})
	}
	return details
}

// decimalDetails bound-checks the two money fields; validator cannot see
// inside decimal.Decimal.
func decimalDetails(req *dtos.PropertyRequest) []dtos.ValidationErrorDetail {
	var details []dtos.ValidationErrorDetail
	if req.RentAmount.LessThan(minRent) {
		details = append(details, dtos.ValidationErrorDetail{
			Field: "rentAmount", Message: "Rent must be at least €100", Code: "min",
		})
	} else if req.RentAmount.GreaterThan(maxRent) {
		details = append(details, dtos.ValidationErrorDetail{
			Field: "rentAmount", Message: "Rent cannot exceed €5000", Code: "max",
		})
	}
	if req.SecurityDeposit.IsNegative() {
		details = append(details, dtos.ValidationErrorDetail{
			Field: "securityDeposit", Message: "Security deposit cannot be negative", Code: "min",
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		if fe.Tag() == "min" || fe.Tag() == "max" {
			return "Title must be between 5 and 200 characters"
		}
		return "Property title is required"
	case "description":
		if fe.Tag() == "max" {
			return "Description cannot exceed 2000 characters"
		}
		return "Description is required"
	case "postalCode":
		if fe.Tag() == "nl_postalcode" {
			return "Invalid Dutch postal code format"
		}
		return "Postal code is required"
	case "propertyType":
		if fe.Tag() == "house_type" {
			return "Unknown house type"
		}
		return "House type is required"
	case "locationType":
		if fe.Tag() == "location_type" {
			return "Unknown location type"
		}
		return "Location is required"
	case "bedrooms":
		return "Number of bedrooms must be between 1 and 10"
	}

	if fe.Tag() == "required" {
		return fmt.Sprintf("%s is required", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
