package middleware

// identity.go holds helpers shared across middleware files.

import "github.com/labstack/echo/v4"

// currentUserID returns the authenticated user id stored in the context
// by JWTAuth, or "guest" for unauthenticated requests.  Used to key the
// rate limiter per user.
func currentUserID(c echo.Context) string {
    if v := c.Get("user_id"); v != nil {
        if s, ok := v.(string); ok && s != "" {
            return s
        }
    }
    return "guest"
}
