// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
    "errors"

    "github.com/go-playground/validator/v10"
    "github.com/labstack/echo/v4"
)

// validate is the shared request validator.  Handlers bind into tagged
// DTOs and run them through this instance before touching any store.
var validate = validator.New()

// getUserID extracts the authenticated user id placed into the context
// by the JWT middleware.  An empty or missing value means the route was
// mounted without the middleware, which is a programming error surfaced
// as unauthorized.
func getUserID(c echo.Context) (string, error) {
    id, _ := c.Get("user_id").(string)
    if id == "" {
        return "", errors.New("no user in context")
    }
    return id, nil
}
