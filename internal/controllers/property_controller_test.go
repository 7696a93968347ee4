package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wealthy-grace/house-Property-service/internal/dtos"
	"github.com/Wealthy-grace/house-Property-service/internal/routes"
	"github.com/Wealthy-grace/house-Property-service/internal/utils"
)

/* ------------------------------------------------------------------
   Service stub
------------------------------------------------------------------ */

type stubPropertyService struct {
	properties []dtos.PropertyDto
	lastCreate *dtos.PropertyRequest
}

func (s *stubPropertyService) Create(_ context.Context, req *dtos.PropertyRequest) (*dtos.PropertyResponse, error) {
	s.lastCreate = req
	return &dtos.PropertyResponse{PropertyID: 1, Message: "Property created successfully", Success: true, Title: req.Title}, nil
}

func (s *stubPropertyService) Update(_ context.Context, id int64, _ *dtos.PropertyRequest) (*dtos.PropertyResponse, error) {
	return &dtos.PropertyResponse{PropertyID: id, Message: "Property updated successfully", Success: true}, nil
}

func (s *stubPropertyService) UpdateStatus(_ context.Context, id int64, _ bool) (*dtos.PropertyResponse, error) {
	return &dtos.PropertyResponse{PropertyID: id, Message: "Property status updated successfully", Success: true}, nil
}

func (s *stubPropertyService) Delete(_ context.Context, id int64) (*dtos.PropertyResponse, error) {
	return &dtos.PropertyResponse{PropertyID: id, Message: "Property deleted successfully", Success: true}, nil
}

func (s *stubPropertyService) GetByID(_ context.Context, id int64) (*dtos.PropertyResponse, error) {
	if id == 404 {
		return nil, utils.NewNotFoundError(id)
	}
	return &dtos.PropertyResponse{PropertyID: id, Message: "Property retrieved successfully", Success: true}, nil
}

func (s *stubPropertyService) SearchByLocation(_ context.Context, _ string) ([]dtos.PropertyDto, error) {
	return s.properties, nil
}

func (s *stubPropertyService) SearchByHouseType(_ context.Context, _ string) ([]dtos.PropertyDto, error) {
	return s.properties, nil
}

func (s *stubPropertyService) SearchBySurfaceArea(_ context.Context, _ string) ([]dtos.PropertyDto, error) {
	return s.properties, nil
}

func (s *stubPropertyService) SearchByInterior(_ context.Context, _ string) ([]dtos.PropertyDto, error) {
	return s.properties, nil
}

func (s *stubPropertyService) SearchByMaxRent(_ context.Context, _ decimal.Decimal) ([]dtos.PropertyDto, error) {
	return s.properties, nil
}

func (s *stubPropertyService) ListAll(_ context.Context) ([]dtos.PropertyDto, error) {
	return s.properties, nil
}

/* ------------------------------------------------------------------
   Harness
------------------------------------------------------------------ */

func newTestRouter(stub *stubPropertyService) *mux.Router {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	c := NewPropertyController(stub, log)

	router := mux.NewRouter()
	router.HandleFunc(routes.Properties, c.ListPropertiesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Properties, c.CreatePropertyHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.PropertiesAvailable, c.AvailablePropertiesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyByID, c.GetPropertyHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyByID, c.UpdatePropertyHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.PropertyStatus, c.UpdatePropertyStatusHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.PropertyByID, c.DeletePropertyHandler).Methods(http.MethodDelete)
	router.HandleFunc(routes.SearchLocationByPath, c.SearchByLocationPathHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchSurfaceArea, c.SearchBySurfaceAreaHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchRentAmount, c.SearchByRentAmountHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchBedrooms, c.SearchByBedroomsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchPriceRange, c.SearchByPriceRangeHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SearchAdvanced, c.AdvancedSearchHandler).Methods(http.MethodGet)
	return router
}

func doJSON(router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validCreateBody() map[string]any {
	return map[string]any{
		"title":           "Modern studio near the university",
		"description":     "Bright furnished studio close to campus.",
		"propertyType":    "Studio",
		"quantity":        2,
		"locationType":    "TILBURG",
		"rentAmount":      850,
		"securityDeposit": 850,
		"streetAddress":   "Professor Cobbenhagenlaan 12",
		"rentalCondition": "Minimum stay 6 months",
		"surfaceArea":     "32 m2",
		"postalCode":      "5037DA",
		"interior":        "Furnished",
		"availableDate":   "2026-10-01",
		"bedrooms":        1,
		"image":           "https://img.example.com/1.jpg",
		"image2":          "https://img.example.com/2.jpg",
		"image3":          "https://img.example.com/3.jpg",
		"image4":          "https://img.example.com/4.jpg",
	}
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var errResp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	return errResp
}

/* ------------------------------------------------------------------
   Tests
------------------------------------------------------------------ */

func TestCreatePropertyHandlerOK(t *testing.T) {
	stub := &stubPropertyService{}
	router := newTestRouter(stub)

	rec := doJSON(router, http.MethodPost, "/api/v1/properties", validCreateBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, stub.lastCreate)
	assert.Equal(t, "5037DA", stub.lastCreate.PostalCode)

	var resp dtos.PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.PropertyID)
}

func TestCreatePropertyHandlerValidation(t *testing.T) {
	router := newTestRouter(&stubPropertyService{})

	body := validCreateBody()
	body["title"] = "abc"          // too short
	body["postalCode"] = "123456"  // not NNNNLL
	body["rentAmount"] = 50        // below minimum
	body["locationType"] = "PARIS" // unknown city

	rec := doJSON(router, http.MethodPost, "/api/v1/properties", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResp := decodeErrorResponse(t, rec)
	assert.Equal(t, utils.ErrCodeValidation, errResp.Code)
	assert.Equal(t, http.StatusBadRequest, errResp.Status)

	raw, _ := json.Marshal(errResp.Details)
	var details []dtos.ValidationErrorDetail
	require.NoError(t, json.Unmarshal(raw, &details))

	fields := map[string]string{}
	for _, d := range details {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "Title must be between 5 and 200 characters", fields["title"])
	assert.Equal(t, "Invalid Dutch postal code format", fields["postalCode"])
	assert.Equal(t, "Unknown location type", fields["locationType"])
	assert.Equal(t, "Rent must be at least €100", fields["rentAmount"])
}

func TestCreatePropertyHandlerBadJSON(t *testing.T) {
	router := newTestRouter(&stubPropertyService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.ErrCodeInvalidPayload, decodeErrorResponse(t, rec).Code)
}

func TestGetPropertyHandlerNotFound(t *testing.T) {
	router := newTestRouter(&stubPropertyService{})

	rec := doJSON(router, http.MethodGet, "/api/v1/properties/404", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	errResp := decodeErrorResponse(t, rec)
	assert.Equal(t, utils.ErrCodeNotFound, errResp.Code)
	assert.Equal(t, "Property not found with ID: 404", errResp.Message)
}

func TestUpdateStatusHandlerRequiresFlag(t *testing.T) {
	router := newTestRouter(&stubPropertyService{})

	rec := doJSON(router, http.MethodPut, "/api/v1/properties/property/1", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.ErrCodeValidation, decodeErrorResponse(t, rec).Code)

	rec = doJSON(router, http.MethodPut, "/api/v1/properties/property/1", map[string]any{"propertyIsRented": true})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSurfaceAreaHandlerRequiresParam(t *testing.T) {
	router := newTestRouter(&stubPropertyService{})

	rec := doJSON(router, http.MethodGet, "/api/v1/properties/search/surface-area", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "surfaceArea query parameter is required")

	rec = doJSON(router, http.MethodGet, "/api/v1/properties/search/surface-area?surfaceArea=32", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRentAmountHandlerRejectsNonNumber(t *testing.T) {
	router := newTestRouter(&stubPropertyService{})

	rec := doJSON(router, http.MethodGet, "/api/v1/properties/search/rent-amount?maxRentAmount=cheap", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "maxRentAmount must be a number")
}

func sampleDtos() []dtos.PropertyDto {
	return []dtos.PropertyDto{
		{ID: 1, Title: "Studio", LocationType: "TILBURG", HouseType: "Studio",
			RentAmount: decimal.NewFromInt(850), Bedrooms: 1, Quantity: 2, SurfaceArea: "32 m2", Interior: "Furnished"},
		{ID: 2, Title: "Family house", LocationType: "EINDHOVEN", HouseType: "Residential_House",
			RentAmount: decimal.NewFromInt(1950), Bedrooms: 4, Quantity: 0, SurfaceArea: "140 m2", Interior: "Upholstered"},
		{ID: 3, Title: "Apartment", LocationType: "AMSTERDAM", HouseType: "Apartment",
			RentAmount: decimal.NewFromInt(2400), Bedrooms: 2, Quantity: 1, SurfaceArea: "68 m2", Interior: "Shell"},
	}
}

func listFromResponse(t *testing.T, rec *httptest.ResponseRecorder) []dtos.PropertyDto {
	t.Helper()
	var list []dtos.PropertyDto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}

func TestAvailableHandlerFiltersSoldOut(t *testing.T) {
	router := newTestRouter(&stubPropertyService{properties: sampleDtos()})

	rec := doJSON(router, http.MethodGet, "/api/v1/properties/available", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := listFromResponse(t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
}

func TestBedroomsHandlerFilters(t *testing.T) {
	router := newTestRouter(&stubPropertyService{properties: sampleDtos()})

	rec := doJSON(router, http.MethodGet, "/api/v1/properties/search/bedrooms?bedrooms=4", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := listFromResponse(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Family house", list[0].Title)
}

func TestPriceRangeHandlerFilters(t *testing.T) {
	router := newTestRouter(&stubPropertyService{properties: sampleDtos()})

	rec := doJSON(router, http.MethodGet, "/api/v1/properties/search/price-range?minPrice=1000&maxPrice=2000", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := listFromResponse(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Family house", list[0].Title)

	rec = doJSON(router, http.MethodGet, "/api/v1/properties/search/price-range?minPrice=1000", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdvancedSearchHandlerCombinesFilters(t *testing.T) {
	router := newTestRouter(&stubPropertyService{properties: sampleDtos()})

	// No filters: everything comes back.
	rec := doJSON(router, http.MethodGet, "/api/v1/properties/search/advanced", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, listFromResponse(t, rec), 3)

	// Location matching ignores case here, unlike the dedicated endpoint.
	rec = doJSON(router, http.MethodGet, "/api/v1/properties/search/advanced?location=eindhoven", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := listFromResponse(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Family house", list[0].Title)

	// Interior is a case-insensitive substring match.
	rec = doJSON(router, http.MethodGet, "/api/v1/properties/search/advanced?interior=furnished", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list = listFromResponse(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Studio", list[0].Title)

	rec = doJSON(router, http.MethodGet,
		"/api/v1/properties/search/advanced?maxRentAmount=2500&minBedrooms=2&maxBedrooms=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list = listFromResponse(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Apartment", list[0].Title)
}
