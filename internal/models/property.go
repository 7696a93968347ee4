package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is a single rental listing. The id is assigned by the store on
// first save and immutable afterwards. IsRented tracks occupancy and is
// independent of Quantity (the availability count).
type Property struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Quantity        int             `json:"quantity"`
	RentAmount      decimal.Decimal `json:"rentAmount"`
	SecurityDeposit decimal.Decimal `json:"securityDeposit"`
	Address         string          `json:"address"`
	RentalCondition string          `json:"rentalCondition"`
	PostalCode      string          `json:"postalCode"`
	LocationType    LocationType    `json:"locationType"`
	HouseType       HouseType       `json:"houseType"`
	AvailableDate   string          `json:"availableDate"`
	Bedrooms        int             `json:"bedrooms"`
	Interior        string          `json:"interior"`
	SurfaceArea     string          `json:"surfaceArea"`
	Image           string          `json:"image"`
	Image2          string          `json:"image2"`
	Image3          string          `json:"image3"`
	Image4          string          `json:"image4"`
	IsRented        bool            `json:"propertyIsRented"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
