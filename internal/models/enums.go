package models

// ------------------------------------------------------------------------
// HouseType enumerates the dwelling classifications we list.
// ------------------------------------------------------------------------
type HouseType string

const (
	HouseTypeApartment        HouseType = "Apartment"
	HouseTypeStudio           HouseType = "Studio"
	HouseTypeRoom             HouseType = "Room"
	HouseTypeResidentialHouse HouseType = "Residential_House"
)

var houseTypes = []HouseType{
	HouseTypeApartment,
	HouseTypeStudio,
	HouseTypeRoom,
	HouseTypeResidentialHouse,
}

// ParseHouseType matches the exact enum spelling. "apartment" does not
// match "Apartment"; callers treat a miss as "no results", not an error.
func ParseHouseType(s string) (HouseType, bool) {
	for _, ht := range houseTypes {
		if string(ht) == s {
			return ht, true
		}
	}
	return "", false
}

func (h HouseType) String() string { return string(h) }
