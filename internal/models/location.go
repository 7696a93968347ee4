package models

import "strings"

// ------------------------------------------------------------------------
// LocationType enumerates the cities we operate in.
// ------------------------------------------------------------------------
type LocationType string

const (
	LocationTilburg   LocationType = "TILBURG"
	LocationEindhoven LocationType = "EINDHOVEN"
	LocationBreda     LocationType = "BREDA"
	LocationUtrecht   LocationType = "UTRECHT"
	LocationAmsterdam LocationType = "AMSTERDAM"
	LocationRotterdam LocationType = "ROTTERDAM"
	LocationDenBosch  LocationType = "DEN_BOSCH"
	LocationGroningen LocationType = "GRONINGEN"
)

var locationTypes = []LocationType{
	LocationTilburg,
	LocationEindhoven,
	LocationBreda,
	LocationUtrecht,
	LocationAmsterdam,
	LocationRotterdam,
	LocationDenBosch,
	LocationGroningen,
}

// ParseLocationType is case-insensitive ("tilburg" matches TILBURG).
func ParseLocationType(s string) (LocationType, bool) {
	upper := strings.ToUpper(s)
	for _, lt := range locationTypes {
		if string(lt) == upper {
			return lt, true
		}
	}
	return "", false
}

func (l LocationType) String() string { return string(l) }
