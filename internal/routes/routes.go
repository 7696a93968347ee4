package routes

const (
	// Health
	Health = "/health"

	// Listing CRUD
	Properties     = "/api/v1/properties"
	PropertyByID   = "/api/v1/properties/{id:[0-9]+}"
	PropertyStatus = "/api/v1/properties/property/{id:[0-9]+}"

	// Public reads
	PropertiesAvailable = "/api/v1/properties/available"

	// ───────────────────────────────
	// Search
	// ───────────────────────────────
	SearchLocation        = "/api/v1/properties/search/location"
	SearchLocationByPath  = "/api/v1/properties/search/location/{location}"
	SearchHouseType       = "/api/v1/properties/search/house-type"
	SearchHouseTypeByPath = "/api/v1/properties/search/house-type/{houseType}"
	SearchSurfaceArea     = "/api/v1/properties/search/surface-area"
	SearchInterior        = "/api/v1/properties/search/interior"
	SearchRentAmount      = "/api/v1/properties/search/rent-amount"
	SearchBedrooms        = "/api/v1/properties/search/bedrooms"
	SearchPriceRange      = "/api/v1/properties/search/price-range"
	SearchAdvanced        = "/api/v1/properties/search/advanced"
)
