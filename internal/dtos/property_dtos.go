package dtos

import (
	"github.com/shopspring/decimal"

	"github.com/Wealthy-grace/house-Property-service/internal/models"
)

/*──────────────────────────────────────────────────────────
  Requests
──────────────────────────────────────────────────────────*/

// PropertyRequest is the full create/update payload. The two decimal
// amounts are bound-checked in Validate (validator has no decimal support).
type PropertyRequest struct {
	Title           string          `json:"title" validate:"required,min=5,max=200"`
	Description     string          `json:"description" validate:"required,max=2000"`
	PropertyType    string          `json:"propertyType" validate:"required,house_type"`
	Quantity        *int            `json:"quantity" validate:"required"`
	LocationType    string          `json:"locationType" validate:"required,location_type"`
	RentAmount      decimal.Decimal `json:"rentAmount"`
	SecurityDeposit decimal.Decimal `json:"securityDeposit"`
	StreetAddress   string          `json:"streetAddress" validate:"required"`
	RentalCondition string          `json:"rentalCondition" validate:"required"`
	SurfaceArea     string          `json:"surfaceArea" validate:"required"`
	PostalCode      string          `json:"postalCode" validate:"required,nl_postalcode"`
	Interior        string          `json:"interior" validate:"required"`
	AvailableDate   string          `json:"availableDate" validate:"required"`
	Bedrooms        int             `json:"bedrooms" validate:"omitempty,min=1,max=10"`
	Image           string          `json:"image" validate:"required"`
	Image2          string          `json:"image2" validate:"required"`
	Image3          string          `json:"image3" validate:"required"`
	Image4          string          `json:"image4" validate:"required"`
}

// UpdatePropertyStatusRequest flips only the rented flag.
type UpdatePropertyStatusRequest struct {
	PropertyIsRented *bool `json:"propertyIsRented" validate:"required"`
}

// Body variants of the search endpoints.
type LocationSearchRequest struct {
	LocationType string `json:"locationType" validate:"required"`
}

type HouseTypeSearchRequest struct {
	HouseType string `json:"houseType" validate:"required"`
}

/*──────────────────────────────────────────────────────────
  Responses
──────────────────────────────────────────────────────────*/

// PropertyResponse is returned by the write operations and the by-id read.
type PropertyResponse struct {
	PropertyID  int64           `json:"propertyId"`
	Message     string          `json:"message"`
	Success     bool            `json:"success"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	RentAmount  decimal.Decimal `json:"rentAmount,omitempty"`
	Image       string          `json:"image,omitempty"`
	Image2      string          `json:"image2,omitempty"`
	Image3      string          `json:"image3,omitempty"`
	Image4      string          `json:"image4,omitempty"`
}

// PropertyDto is the summary shape used by list and search endpoints.
type PropertyDto struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	RentAmount       decimal.Decimal `json:"rentAmount"`
	SecurityDeposit  decimal.Decimal `json:"securityDeposit"`
	Address          string          `json:"address"`
	RentalCondition  string          `json:"rentalCondition"`
	PostalCode       string          `json:"postalCode"`
	LocationType     string          `json:"locationType"`
	HouseType        string          `json:"houseType"`
	Quantity         int             `json:"quantity"`
	AvailableDate    string          `json:"availableDate"`
	Bedrooms         int             `json:"bedrooms"`
	Interior         string          `json:"interior"`
	SurfaceArea      string          `json:"surfaceArea"`
	PropertyIsRented bool            `json:"propertyIsRented"`
	Image            string          `json:"image"`
	Image2           string          `json:"image2"`
	Image3           string          `json:"image3"`
	Image4           string          `json:"image4"`
}

// helper
func NewPropertyDtoFromModel(p *models.Property) PropertyDto {
	return PropertyDto{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		RentAmount:       p.RentAmount,
		SecurityDeposit:  p.SecurityDeposit,
		Address:          p.Address,
		RentalCondition:  p.RentalCondition,
		PostalCode:       p.PostalCode,
		LocationType:     p.LocationType.String(),
		HouseType:        p.HouseType.String(),
		Quantity:         p.Quantity,
		AvailableDate:    p.AvailableDate,
		Bedrooms:         p.Bedrooms,
		Interior:         p.Interior,
		SurfaceArea:      p.SurfaceArea,
		PropertyIsRented: p.IsRented,
		Image:            p.Image,
		Image2:           p.Image2,
		Image3:           p.Image3,
		Image4:           p.Image4,
	}
}

func NewPropertyDtosFromModels(list []*models.Property) []PropertyDto {
	out := make([]PropertyDto, len(list))
	for i, p := range list {
		out[i] = NewPropertyDtoFromModel(p)
	}
	return out
}
