package middleware

import (
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RoleAdmin marks callers allowed to use the administrative endpoints.
const RoleAdmin = "admin"

const principalContextKey = "principal"

// Principal represents the authenticated caller extracted from the JWT.
// Token issuance is handled by an external identity service; this package
// only validates tokens and extracts the caller's identity.
type Principal struct {
	UserID string // the token's sub claim
	Role   string // "customer" | "courier" | "admin"
}

// PrincipalFromContext retrieves the principal stored by JWTAuth.
func PrincipalFromContext(ctx echo.Context) (*Principal, bool) {
	p, ok := ctx.Get(principalContextKey).(*Principal)
	return p, ok
}

// JWTAuth returns middleware that validates a Bearer JWT signed with the
// given HS256 secret and stores the resulting Principal in the request
// context. Requests without a valid token are rejected with 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := parseJWT(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// RequireAdmin returns middleware that rejects callers whose role is not
// admin. Must run after JWTAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, ok := PrincipalFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing principal")
			}

			if principal.Role != RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}

			return next(ctx)
		}
	}
}

// parseJWT validates and extracts claims from a JWT token.
func parseJWT(tokenStr string, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	type claims struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}

	c, _ := tok.Claims.(*claims)
	if c == nil || c.Subject == "" || c.Role == "" {
		return nil, errors.New("invalid claims")
	}

	return &Principal{UserID: c.Subject, Role: strings.ToLower(c.Role)}, nil
}
