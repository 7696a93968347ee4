//go:build integration

package integration

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wealthy-grace/house-Property-service/internal/dtos"
)

func decodeSecret(b64 string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(b64)
}

func doRequest(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, baseURL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func uniqueCreateBody(suffix string) map[string]any {
	return map[string]any{
		"title":           fmt.Sprintf("Integration listing %s", suffix),
		"description":     "Created by the integration test suite.",
		"propertyType":    "Apartment",
		"quantity":        1,
		"locationType":    "ROTTERDAM",
		"rentAmount":      1200,
		"securityDeposit": 1200,
		"streetAddress":   fmt.Sprintf("Teststraat %s", suffix),
		"rentalCondition": "Integration test only",
		"surfaceArea":     fmt.Sprintf("55 m2 (%s)", suffix),
		"postalCode":      "3011AB",
		"interior":        fmt.Sprintf("Furnished (%s)", suffix),
		"availableDate":   "2026-12-01",
		"bedrooms":        2,
		"image":           "https://img.example.com/a.jpg",
		"image2":          "https://img.example.com/b.jpg",
		"image3":          "https://img.example.com/c.jpg",
		"image4":          "https://img.example.com/d.jpg",
	}
}

func TestHealthEndpoint(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/health", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWritesRequireAuth(t *testing.T) {
	resp := doRequest(t, http.MethodPost, "/api/v1/properties", "", uniqueCreateBody("noauth"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPropertyLifecycle(t *testing.T) {
	token := managerToken(t)
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	// Create
	resp := doRequest(t, http.MethodPost, "/api/v1/properties", token, uniqueCreateBody(suffix))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created dtos.PropertyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.True(t, created.Success)
	require.NotZero(t, created.PropertyID)
	id := created.PropertyID

	// Duplicate create conflicts
	resp = doRequest(t, http.MethodPost, "/api/v1/properties", token, uniqueCreateBody(suffix))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Read back without auth
	resp = doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/properties/%d", id), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Flip the rented flag
	resp = doRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/properties/property/%d", id), token,
		map[string]any{"propertyIsRented": true})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Delete and confirm it is gone
	resp = doRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/properties/%d", id), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/properties/%d", id), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
