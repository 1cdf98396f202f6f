package middleware // reusable HTTP middleware functions

import (
    "net/http"
    "strings"

    "github.com/golang-jwt/jwt/v5" // JWT parsing and validation
    "github.com/labstack/echo/v4"  // Echo framework middleware types
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the token's subject into the request context.  The
// provided secret must match the one used when issuing tokens.  Wrapped
// handlers read the authenticated user via c.Get("user_id").
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Parse with HS256 only; a token signed with any other
            // method is rejected.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }
            sub, _ := claims["sub"].(string)
            if sub == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid subject"})
            }
            c.Set("user_id", sub)
            return next(c)
        }
    }
}
