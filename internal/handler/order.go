package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/cinemapro/booking-api/internal/repository"
    "github.com/cinemapro/booking-api/internal/ticket"
)

// OrderHandler serves "My tickets": the user's past orders and their QR
// codes.
type OrderHandler struct {
    Orders OrderStore
}

func NewOrderHandler(o OrderStore) *OrderHandler {
    return &OrderHandler{Orders: o}
}

// List handles GET /v1/orders.
func (h *OrderHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    orders, err := h.Orders.ListByUser(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list orders failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// Get handles GET /v1/orders/:id.  Ownership is enforced in the store
// query; a foreign or unknown id is a plain 404.
func (h *OrderHandler) Get(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    o, err := h.Orders.GetByIDForUser(ctx, c.Param("id"), userID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load order failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"order": o, "qr_payload": o.QRPayload})
}

// QR handles GET /v1/orders/:id/qr and renders the stored ticket payload
// as a PNG.
func (h *OrderHandler) QR(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    o, err := h.Orders.GetByIDForUser(ctx, c.Param("id"), userID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load order failed"})
    }

    png, err := ticket.GeneratePNG(o.QRPayload, 320)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "render qr failed"})
    }
    return c.Blob(http.StatusOK, "image/png", png)
}
