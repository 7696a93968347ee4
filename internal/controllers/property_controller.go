package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Wealthy-grace/house-Property-service/internal/dtos"
	"github.com/Wealthy-grace/house-Property-service/internal/services"
	"github.com/Wealthy-grace/house-Property-service/internal/utils"
)

type PropertyController struct {
	service services.PropertyService
	log     *logrus.Logger
}

func NewPropertyController(service services.PropertyService, log *logrus.Logger) *PropertyController {
	return &PropertyController{service: service, log: log}
}

/* ------------------------------------------------------------------
   Writes
------------------------------------------------------------------ */

func (c *PropertyController) CreatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePropertyRequest(w, r)
	if !ok {
		return
	}

	resp, err := c.service.Create(r.Context(), req)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *PropertyController) UpdatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}
	req, ok := decodePropertyRequest(w, r)
	if !ok {
		return
	}

	resp, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *PropertyController) UpdatePropertyStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdatePropertyStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil,
		)
		return
	}
	if details := validationDetails(validate.Struct(&req)); len(details) > 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", details,
		)
		return
	}

	resp, err := c.service.UpdateStatus(r.Context(), id, *req.PropertyIsRented)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *PropertyController) DeletePropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	resp, err := c.service.Delete(r.Context(), id)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

/* ------------------------------------------------------------------
   Reads
------------------------------------------------------------------ */

func (c *PropertyController) GetPropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	resp, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *PropertyController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	properties, err := c.service.ListAll(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, properties)
}

// AvailablePropertiesHandler lists properties that still have units left.
func (c *PropertyController) AvailablePropertiesHandler(w http.ResponseWriter, r *http.Request) {
	properties, err := c.service.ListAll(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	available := make([]dtos.PropertyDto, 0, len(properties))
	for _, p := range properties {
		if p.Quantity > 0 {
			available = append(available, p)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, available)
}

/* ------------------------------------------------------------------
   Search
------------------------------------------------------------------ */

func (c *PropertyController) SearchByLocationPathHandler(w http.ResponseWriter, r *http.Request) {
	location := mux.Vars(r)["location"]

	properties, err := c.service.SearchByLocation(r.Context(), location)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, properties)
}

func (c *PropertyController) SearchByLocationBodyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LocationSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil,
		)
		return
	}
	if details := validationDetails(validate.Struct(&req)); len(details) > 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", details,
		)
		return
	}

	properties, err := c.service.SearchByLocation(r.Context(), req.LocationType)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, properties)
}

func (c *PropertyController) SearchByHouseTypePathHandler(w http.ResponseWriter, r *http.Request) {
	houseType := mux.Vars(r)["houseType"]

	properties, err := c.service.SearchByHouseType(r.Context(), houseType)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, properties)
}

func (c *PropertyController) SearchByHouseTypeBodyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.HouseTypeSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil,
		)
		return
	}
	if details := validationDetails(validate.Struct(&req)); len(details) > 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", details,
		)
		return
	}

	properties, err := c.service.SearchByHouseType(r.Context(), req.HouseType)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, properties)
}

func (c *PropertyController) SearchBySurfaceAreaHandler(w http.ResponseWriter, r *http.Request) {
	surfaceArea, ok := requiredQueryParam(w, r, "surfaceArea")
	if !ok {
		return
	}

	properties, err := c.service.SearchBySurfaceArea(r.Context(), surfaceArea)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, properties)
}

func (c *PropertyController) SearchByInteriorHandler(w http.ResponseWriter, r *http.Request) {
	interior, ok := requiredQueryParam(w, r, "interior")
	if !ok {
		return
	}

	properties, err := c.service.SearchByInterior(r.Context(), interior)
	if err != nil {
		c.handleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, properties)
}

func (c *PropertyController) SearchByRentAmountHandler(w http.ResponseWriter, r *http.Request) {
	raw, ok := requiredQueryParam(w, r, "maxRentAmount")
	if !ok {
		return
	}
	maxRentAmount, err := decimal.NewFromString(raw)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "maxRentAmount must be a number", nil,
		)
		return
	}

	properties, sErr := c.service.SearchByMaxRent(r.Context(), maxRentAmount)
	if sErr != nil {
		c.handleError(w, sErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, properties)
}

func (c *PropertyController) SearchByBedroomsHandler(w http.ResponseWriter, r *http.Request) {
	raw, ok := requiredQueryParam(w, r, "bedrooms")
	if !ok {
		return
	}
	bedrooms, err := strconv.Atoi(raw)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "bedrooms must be an integer", nil,
		)
		return
	}

	properties, sErr := c.service.ListAll(r.Context())
	if sErr != nil {
		c.handleError(w, sErr)
		return
	}

	matches := make([]dtos.PropertyDto, 0, len(properties))
	for _, p := range properties {
		if p.Bedrooms == bedrooms {
			matches = append(matches, p)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, matches)
}

func (c *PropertyController) SearchByPriceRangeHandler(w http.ResponseWriter, r *http.Request) {
	minRaw, ok := requiredQueryParam(w, r, "minPrice")
	if !ok {
		return
	}
	maxRaw, ok := requiredQueryParam(w, r, "maxPrice")
	if !ok {
		return
	}
	minPrice, minErr := decimal.NewFromString(minRaw)
	maxPrice, maxErr := decimal.NewFromString(maxRaw)
	if minErr != nil || maxErr != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "minPrice and maxPrice must be numbers", nil,
		)
		return
	}

	properties, err := c.service.ListAll(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	matches := make([]dtos.PropertyDto, 0, len(properties))
	for _, p := range properties {
		if p.RentAmount.GreaterThanOrEqual(minPrice) && p.RentAmount.LessThanOrEqual(maxPrice) {
			matches = append(matches, p)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, matches)
}

// AdvancedSearchHandler combines any subset of the filters; absent
// parameters match everything.
func (c *PropertyController) AdvancedSearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	location := q.Get("location")
	houseType := q.Get("houseType")
	surfaceArea := q.Get("surfaceArea")
	interior := q.Get("interior")

	var maxRent decimal.Decimal
	hasMaxRent := false
	if raw := q.Get("maxRentAmount"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "maxRentAmount must be a number", nil,
			)
			return
		}
		maxRent = parsed
		hasMaxRent = true
	}

	minBedrooms, okMin := optionalIntParam(w, q.Get("minBedrooms"), "minBedrooms")
	if !okMin {
		return
	}
	maxBedrooms, okMax := optionalIntParam(w, q.Get("maxBedrooms"), "maxBedrooms")
	if !okMax {
		return
	}

	properties, err := c.service.ListAll(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	matches := make([]dtos.PropertyDto, 0, len(properties))
	for _, p := range properties {
		if location != "" && !strings.EqualFold(p.LocationType, location) {
			continue
		}
		if houseType != "" && !strings.EqualFold(p.HouseType, houseType) {
			continue
		}
		if surfaceArea != "" && !strings.Contains(strings.ToLower(p.SurfaceArea), strings.ToLower(surfaceArea)) {
			continue
		}
		if interior != "" && !strings.Contains(strings.ToLower(p.Interior), strings.ToLower(interior)) {
			continue
		}
		if hasMaxRent && p.RentAmount.GreaterThan(maxRent) {
			continue
		}
		if minBedrooms != nil && p.Bedrooms < *minBedrooms {
			continue
		}
		if maxBedrooms != nil && p.Bedrooms > *maxBedrooms {
			continue
		}
		matches = append(matches, p)
	}
	utils.RespondWithJSON(w, http.StatusOK, matches)
}

/* ------------------------------------------------------------------
   helpers
------------------------------------------------------------------ */

func (c *PropertyController) handleError(w http.ResponseWriter, err error) {
	c.log.WithError(err).Error("Property request failed")
	utils.HandleAppError(w, err)
}

func propertyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property ID", nil,
		)
		return 0, false
	}
	return id, true
}

func requiredQueryParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, name+" query parameter is required", nil,
		)
		return "", false
	}
	return value, true
}

func optionalIntParam(w http.ResponseWriter, raw, name string) (*int, bool) {
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, name+" must be an integer", nil,
		)
		return nil, false
	}
	return &value, true
}
