//go:build integration

package integration

import (
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Integration tests run against a live service instance:
//
//	BASE_URL=http://localhost:8080 JWT_SECRET_BASE64=... \
//	  go test -tags integration ./internal/integration/...
var (
	baseURL    string
	jwtSecret  []byte
	httpClient = &http.Client{Timeout: 10 * time.Second}
)

func TestMain(m *testing.M) {
	baseURL = os.Getenv("BASE_URL")
	if baseURL == "" {
		log.Fatal("BASE_URL env var is required for integration tests")
	}

	secretB64 := os.Getenv("JWT_SECRET_BASE64")
	if secretB64 == "" {
		log.Fatal("JWT_SECRET_BASE64 env var is required for integration tests")
	}
	var err error
	jwtSecret, err = decodeSecret(secretB64)
	if err != nil {
		log.Fatalf("JWT_SECRET_BASE64 is not valid base64: %v", err)
	}

	os.Exit(m.Run())
}

// managerToken mints a PROPERTY_MANAGER token the way the user service does.
func managerToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "integration-test-manager",
		"role": "PROPERTY_MANAGER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}
