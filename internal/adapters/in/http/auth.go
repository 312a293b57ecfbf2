package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const bearerAuthScheme = "bearerAuth"

// TokenVerifier is the access gate. It accepts HMAC-signed bearer tokens and
// rejects everything else with ErrUnauthorized. An empty secret rejects
// every token.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify parses the value of an Authorization header.
func (v *TokenVerifier) Verify(authorization string) (jwt.MapClaims, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: token verification is not configured", ErrUnauthorized)
	}

	tokenString, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || strings.TrimSpace(tokenString) == "" {
		return nil, fmt.Errorf("%w: missing bearer token", ErrUnauthorized)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	return claims, nil
}

// Authenticate is the openapi3filter.AuthenticationFunc for operations that
// declare the bearerAuth security requirement.
func (v *TokenVerifier) Authenticate(_ context.Context, input *openapi3filter.AuthenticationInput) error {
	if input.SecuritySchemeName != bearerAuthScheme {
		return fmt.Errorf("%w: unsupported security scheme %q", ErrUnauthorized, input.SecuritySchemeName)
	}

	_, err := v.Verify(input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization))
	return err
}
