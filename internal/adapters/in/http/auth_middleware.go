package http

import (
	"net/http"
	"strings"

	"radiology/internal/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// principalClaims is the JWT claim set issued by the hospital identity
// provider. Roles carry the clinical role names known to the auth package.
type principalClaims struct {
	UserID   int64    `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware resolves the bearer token into an auth.Principal and
// attaches it to the request context. Claims are resolved exactly once here;
// handlers and use cases read the principal from the context.
//
// A request without an Authorization header passes through unauthenticated:
// command handlers answer those with a not_authenticated outcome. A request
// that presents a token which fails verification is rejected outright.
func NewAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid authorization header",
				})
			}

			claims := &principalClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token",
				})
			}

			roles := make([]auth.Role, 0, len(claims.Roles))
			for _, role := range claims.Roles {
				roles = append(roles, auth.Role(role))
			}

			principal := auth.NewPrincipal(claims.UserID, claims.Username, roles)
			ctx := auth.WithPrincipal(c.Request().Context(), principal)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
