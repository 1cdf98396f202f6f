package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/cinemapro/booking-api/internal/booking"
    "github.com/cinemapro/booking-api/internal/config"
    "github.com/cinemapro/booking-api/internal/model"
    "github.com/cinemapro/booking-api/internal/queue"
    "github.com/cinemapro/booking-api/internal/repository"
    "github.com/cinemapro/booking-api/internal/ticket"
)

// OrderStore is the order storage surface booking handlers depend on.
// *repository.OrderRepo satisfies it.
type OrderStore interface {
    Create(ctx context.Context, o *model.Order) error
    ListByUser(ctx context.Context, userID string) ([]model.Order, error)
    GetByIDForUser(ctx context.Context, orderID, userID string) (model.Order, error)
}

// BookingHandler drives the whole checkout: occupancy reads, seat
// selection, the commit write, snack pricing and order creation.
type BookingHandler struct {
    Cfg    config.Config
    Store  booking.OccupancyStore
    Movies MovieCatalog
    Snacks SnackMenu
    Orders OrderStore
    Users  UserStore

    // Publish sends the confirmation event after a successful booking.
    // Failures are logged and ignored; the ticket is already issued.
    Publish func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

func NewBookingHandler(cfg config.Config, store booking.OccupancyStore, m MovieCatalog, s SnackMenu, o OrderStore, u UserStore, publish func(context.Context, queue.BookingConfirmedEvent) error) *BookingHandler {
    return &BookingHandler{Cfg: cfg, Store: store, Movies: m, Snacks: s, Orders: o, Users: u, Publish: publish}
}

// layout returns the configured hall grid.
func (h *BookingHandler) layout() model.HallLayout {
    return model.HallLayout{Rows: h.Cfg.HallRows, Columns: h.Cfg.HallColumns}
}

// prices returns the configured per-tier price table.
func (h *BookingHandler) prices() model.PriceTable {
    return model.PriceTable{
        model.TierStandard: uint32(h.Cfg.StandardPriceCents),
        model.TierVIP:      uint32(h.Cfg.VIPPriceCents),
    }
}

// ----- DTOs -----

type snackLineReq struct {
    SnackID  string `json:"snack_id" validate:"required"`
    Quantity int    `json:"quantity" validate:"required,min=1,max=20"`
}

type bookingReq struct {
    MovieID    string         `json:"movie_id" validate:"required"`
    Showtime   string         `json:"showtime" validate:"required"`
    Experience string         `json:"experience" validate:"omitempty,oneof=STANDARD VIP"`
    Seats      []string       `json:"seats" validate:"required,min=1,max=24,dive,required"`
    Snacks     []snackLineReq `json:"snacks" validate:"omitempty,dive"`
}

// Occupancy handles GET /v1/showtimes/occupancy?movie=<title>&time=<hh:mm>.
// It returns the occupied seat labels for the showtime together with the
// hall grid so a client can render the seat map.  A missing record means
// an empty occupancy set; a store failure is a 503 and clients must not
// treat it as "all free".
func (h *BookingHandler) Occupancy(c echo.Context) error {
    movie := strings.TrimSpace(c.QueryParam("movie"))
    start := strings.TrimSpace(c.QueryParam("time"))
    if movie == "" || start == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie and time required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    key := model.NewShowtimeKey(movie, start)
    rec, err := h.Store.Fetch(ctx, key)
    if err != nil {
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "occupancy unavailable"})
    }

    occupied := make([]model.SeatID, 0, len(rec.Occupied))
    for id := range rec.Occupied {
        occupied = append(occupied, id)
    }
    layout := h.layout()
    return c.JSON(http.StatusOK, echo.Map{
        "showtime_key": key,
        "occupied":     model.SeatLabels(occupied),
        "layout":       echo.Map{"rows": layout.Rows, "columns": layout.Columns},
    })
}

// Create handles POST /v1/bookings.  It validates the request against
// the catalog, replays the seat selection against fresh occupancy,
// commits the seats, prices any snacks, stores the order and returns
// the digital ticket.
//
// Status mapping: 400 for malformed input, unknown showtimes and seats
// outside the grid; 404 for unknown movies; 409 when a requested seat
// is already taken (including commit-time conflicts, with the contested
// labels in "seats"); 503 when occupancy cannot be loaded; 502 when the
// commit write fails.  Only a committed selection ever produces an
// order.
func (h *BookingHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var req bookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Experience = strings.ToUpper(strings.TrimSpace(req.Experience))
    if req.Experience == "" {
        req.Experience = string(model.TierStandard)
    }
    if err := validate.Struct(req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking request"})
    }
    tier := model.ExperienceTier(req.Experience)

    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    m, err := h.Movies.GetByID(ctx, req.MovieID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load movie failed"})
    }
    var hall string
    found := false
    for _, st := range m.Showtimes {
        if st.StartTime == req.Showtime {
            hall = st.Hall
            found = true
            break
        }
    }
    if !found {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown showtime"})
    }
    if tier == model.TierVIP && !m.VIP {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "vip not offered for this movie"})
    }

    // Replay the selection against fresh occupancy.
    session := booking.NewSession(h.Store, h.layout(), h.prices())
    if err := session.ChooseShowtime(ctx, m.Title, req.Showtime, hall); err != nil {
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "occupancy unavailable"})
    }
    if err := session.SetTier(tier); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid experience"})
    }
    for _, label := range req.Seats {
        id, perr := model.ParseSeatID(label)
        if perr != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat " + label})
        }
        if terr := session.ToggleSeat(id); terr != nil {
            switch {
            case errors.Is(terr, booking.ErrSeatOccupied):
                return c.JSON(http.StatusConflict, echo.Map{"error": "seat unavailable", "seats": []string{id.String()}})
            case errors.Is(terr, booking.ErrSeatOutOfLayout):
                return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat outside hall " + label})
            default:
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seat selection failed"})
            }
        }
    }

    details, err := booking.NewCommitter(h.Store).Commit(ctx, session.Selection())
    if err != nil {
        var conflict *booking.ConflictError
        switch {
        case errors.As(err, &conflict):
            return c.JSON(http.StatusConflict, echo.Map{"error": "seat unavailable", "seats": model.SeatLabels(conflict.Seats)})
        case errors.Is(err, booking.ErrEmptySelection):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seats selected"})
        default:
            return c.JSON(http.StatusBadGateway, echo.Map{"error": "booking commit failed"})
        }
    }

    // Price the snack lines at current menu prices.
    var snackItems []model.SnackOrderItem
    var snacksCents uint32
    for _, line := range req.Snacks {
        s, serr := h.Snacks.GetByID(ctx, line.SnackID)
        if serr != nil {
            if errors.Is(serr, repository.ErrNotFound) {
                return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown snack " + line.SnackID})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load snack failed"})
        }
        snackItems = append(snackItems, model.SnackOrderItem{
            SnackID:    s.ID,
            Name:       s.Name,
            Quantity:   line.Quantity,
            PriceCents: s.PriceCents,
        })
        snacksCents += uint32(line.Quantity) * s.PriceCents
    }
    totalCents := details.SubtotalCents + snacksCents

    customer := "Guest"
    if u, uerr := h.Users.GetByID(ctx, userID); uerr == nil && u.Name != "" {
        customer = u.Name
    }

    reference := "BK-" + strings.ToUpper(uuid.NewString()[:8])
    qrPayload, err := ticket.EncodePayload(ticket.Payload{
        Reference:  reference,
        Customer:   customer,
        MovieTitle: details.MovieTitle,
        Hall:       details.Hall,
        Seats:      details.Seats,
        Total:      ticket.FormatCents(totalCents),
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "build ticket failed"})
    }

    order := model.Order{
        Reference:    reference,
        UserID:       userID,
        MovieTitle:   details.MovieTitle,
        Showtime:     details.Showtime,
        Hall:         details.Hall,
        Tier:         details.Tier,
        Seats:        details.Seats,
        Snacks:       snackItems,
        TicketsCents: details.SubtotalCents,
        SnacksCents:  snacksCents,
        TotalCents:   totalCents,
        QRPayload:    qrPayload,
    }
    if err := h.Orders.Create(ctx, &order); err != nil {
        // The seats are committed; surface the failure but do not try to
        // roll the merge back.
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save order failed"})
    }

    if h.Publish != nil {
        ev := queue.BookingConfirmedEvent{
            OrderID:     order.ID,
            Reference:   order.Reference,
            UserID:      order.UserID,
            MovieTitle:  order.MovieTitle,
            Showtime:    order.Showtime,
            Hall:        order.Hall,
            Experience:  string(order.Tier),
            Seats:       order.Seats,
            TotalCents:  order.TotalCents,
            ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
        }
        if perr := h.Publish(ctx, ev); perr != nil {
            log.Printf("booking: publish confirmation for %s failed: %v", order.Reference, perr)
        }
    }

    return c.JSON(http.StatusCreated, echo.Map{"order": order, "qr_payload": order.QRPayload})
}
