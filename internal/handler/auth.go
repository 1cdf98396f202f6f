package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/cinemapro/booking-api/internal/config"
    "github.com/cinemapro/booking-api/internal/model"
    "github.com/cinemapro/booking-api/internal/repository"
    "github.com/cinemapro/booking-api/internal/utils"
)

// UserStore is the account storage surface auth handlers depend on.
// *repository.UserRepo satisfies it.
type UserStore interface {
    Create(ctx context.Context, name, email, password string, cost int) (string, error)
    GetByEmail(ctx context.Context, email string) (model.User, error)
    GetByID(ctx context.Context, id string) (model.User, error)
}

// TokenStore is the refresh token storage surface auth handlers depend
// on.  *repository.TokenRepo satisfies it.
type TokenStore interface {
    StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error
    ValidateRefresh(ctx context.Context, tokenHash string) (string, error)
    RevokeByHash(ctx context.Context, tokenHash string) error
    RevokeAllForUser(ctx context.Context, userID string) error
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
    Cfg    config.Config
    Users  UserStore
    Tokens TokenStore
}

func NewAuthHandler(cfg config.Config, u UserStore, t TokenStore) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type registerReq struct {
    Name     string `json:"name" validate:"required,min=2,max=80"`
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required,min=8,max=72"`
}
type loginReq struct {
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required"`
}
type refreshReq struct {
    RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}
type userPart struct {
    ID    string `json:"id"`
    Name  string `json:"name"`
    Email string `json:"email"`
}
type authResp struct {
    User    userPart  `json:"user"`
    Access  tokenPart `json:"access"`
    Refresh tokenPart `json:"refresh"`
}

// issuePair creates an access/refresh pair for a user and persists the
// refresh hash.
func (h *AuthHandler) issuePair(ctx context.Context, userID string) (utils.AccessToken, utils.RefreshToken, error) {
    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, userID, h.Cfg.AccessTTLMin)
    if err != nil {
        return utils.AccessToken{}, utils.RefreshToken{}, err
    }
    refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
    if err != nil {
        return utils.AccessToken{}, utils.RefreshToken{}, err
    }
    if err := h.Tokens.StoreRefresh(ctx, userID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
        return utils.AccessToken{}, utils.RefreshToken{}, err
    }
    return access, refresh, nil
}

// Register: create account and return tokens immediately.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if err := validate.Struct(req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, h.Cfg.BcryptCost)
    if err != nil {
        if errors.Is(err, repository.ErrEmailExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }

    access, refresh, err := h.issuePair(ctx, uid)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue tokens failed"})
    }

    return c.JSON(http.StatusCreated, authResp{
        User:    userPart{ID: uid, Name: strings.TrimSpace(req.Name), Email: req.Email},
        Access:  tokenPart{Token: access.Token, Expires: access.Exp},
        Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
    })
}

// Login: verify credentials and return a new pair.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if err := validate.Struct(req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    access, refresh, err := h.issuePair(ctx, u.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue tokens failed"})
    }

    return c.JSON(http.StatusOK, authResp{
        User:    userPart{ID: u.ID, Name: u.Name, Email: u.Email},
        Access:  tokenPart{Token: access.Token, Expires: access.Exp},
        Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
    })
}

// Refresh: validate by hash, revoke the old token, issue a new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
    var req refreshReq
    if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
    }
    hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    userID, err := h.Tokens.ValidateRefresh(ctx, hash)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
    }
    _ = h.Tokens.RevokeByHash(ctx, hash)

    u, err := h.Users.GetByID(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
    }

    access, refresh, err := h.issuePair(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue tokens failed"})
    }

    return c.JSON(http.StatusOK, authResp{
        User:    userPart{ID: userID, Name: u.Name, Email: u.Email},
        Access:  tokenPart{Token: access.Token, Expires: access.Exp},
        Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
    })
}

// Logout: revoke the presented refresh token, or every session of the
// authenticated user when no token is given (protected route).
func (h *AuthHandler) Logout(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var req refreshReq
    _ = c.Bind(&req)
    raw := strings.TrimSpace(req.RefreshToken)

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if raw != "" {
        hash := utils.HashRefreshRaw(raw)
        if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
        }
        if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
        }
        return c.NoContent(http.StatusNoContent)
    }

    if err := h.Tokens.RevokeAllForUser(ctx, userID); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// Me: return the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByID(ctx, userID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
    }
    return c.JSON(http.StatusOK, userPart{ID: u.ID, Name: u.Name, Email: u.Email})
}
