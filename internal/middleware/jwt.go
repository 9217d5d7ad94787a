package middleware

import (
	"errors"

	"saasboard/internal/common"
	"saasboard/internal/services"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// ClaimsContextKey is where the verified claims are stored on the echo context.
const ClaimsContextKey = "claims"

// TokenValidator verifies a bearer token. services.AuthService satisfies it.
type TokenValidator interface {
	ValidateToken(tokenString string) (*services.TokenClaims, error)
}

// JWTMiddleware verifies the bearer token and copies the caller's identity
// into the request context.
func JWTMiddleware(validator TokenValidator) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return validator.ValidateToken(auth)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(ClaimsContextKey).(*services.TokenClaims)
			if !ok {
				return
			}
			ctx := common.WithIdentity(c.Request().Context(), claims.Identity())
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractErr *echojwt.TokenExtractionError
			if errors.As(err, &extractErr) {
				return common.NewUnauthorized("Missing or malformed token")
			}
			return common.NewUnauthorized("Invalid or expired token")
		},
	})
}
