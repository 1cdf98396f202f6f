package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/cinemapro/booking-api/internal/config"
    "github.com/cinemapro/booking-api/internal/model"
    "github.com/cinemapro/booking-api/internal/repository"
)

// MovieCatalog is the catalog read surface.  *repository.MovieRepo
// satisfies it.
type MovieCatalog interface {
    List(ctx context.Context) ([]model.Movie, error)
    GetByID(ctx context.Context, id string) (model.Movie, error)
    GetByTitle(ctx context.Context, title string) (model.Movie, error)
}

// SnackMenu is the concession menu read surface.  *repository.SnackRepo
// satisfies it.
type SnackMenu interface {
    List(ctx context.Context) ([]model.Snack, error)
    GetByID(ctx context.Context, id string) (model.Snack, error)
}

// CatalogHandler serves the movie catalog and the concession menu.
// Both are read-only from the storefront's point of view; writes happen
// through the seed command.
type CatalogHandler struct {
    Cfg    config.Config
    Movies MovieCatalog
    Snacks SnackMenu
}

func NewCatalogHandler(cfg config.Config, m MovieCatalog, s SnackMenu) *CatalogHandler {
    return &CatalogHandler{Cfg: cfg, Movies: m, Snacks: s}
}

// ListMovies handles GET /v1/movies.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    movies, err := h.Movies.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list movies failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"movies": movies})
}

// GetMovie handles GET /v1/movies/:id.  The response includes the
// movie's showtimes and the per-tier prices, which is everything the
// storefront needs to render the booking screen.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    m, err := h.Movies.GetByID(ctx, c.Param("id"))
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load movie failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "movie": m,
        "prices": echo.Map{
            "standard_cents": h.Cfg.StandardPriceCents,
            "vip_cents":      h.Cfg.VIPPriceCents,
        },
    })
}

// ListSnacks handles GET /v1/snacks.
func (h *CatalogHandler) ListSnacks(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    snacks, err := h.Snacks.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list snacks failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"snacks": snacks})
}
