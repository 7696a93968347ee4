package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Roles allowed to mutate listings. Tokens are issued by the user service;
// this service only validates them.
const (
	RoleAdmin           = "ADMIN"
	RolePropertyManager = "PROPERTY_MANAGER"
)

// ValidateToken checks the token's HMAC signature and standard claims and
// returns its claim set. Expiry is enforced by the parser (jwt.ErrTokenExpired).
func ValidateToken(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RoleFromClaims normalizes the "role" claim: upper-cased, with the
// "ROLE_" prefix some issuers add stripped off.
func RoleFromClaims(claims jwt.MapClaims) (string, bool) {
	raw, ok := claims["role"].(string)
	if !ok || raw == "" {
		return "", false
	}
	role := strings.ToUpper(raw)
	role = strings.TrimPrefix(role, "ROLE_")
	return role, true
}
