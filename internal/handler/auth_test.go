package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"

    "github.com/cinemapro/booking-api/internal/config"
    "github.com/cinemapro/booking-api/internal/model"
    "github.com/cinemapro/booking-api/internal/repository"
)

type fakeUserStore struct {
    createFn     func(ctx context.Context, name, email, password string, cost int) (string, error)
    getByEmailFn func(ctx context.Context, email string) (model.User, error)
    getByIDFn    func(ctx context.Context, id string) (model.User, error)
}

func (f *fakeUserStore) Create(ctx context.Context, name, email, password string, cost int) (string, error) {
    return f.createFn(ctx, name, email, password, cost)
}
func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
    return f.getByEmailFn(ctx, email)
}
func (f *fakeUserStore) GetByID(ctx context.Context, id string) (model.User, error) {
    return f.getByIDFn(ctx, id)
}

type fakeTokenStore struct {
    stored map[string]string // hash -> user id
}

func newFakeTokenStore() *fakeTokenStore {
    return &fakeTokenStore{stored: map[string]string{}}
}
func (f *fakeTokenStore) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
    f.stored[tokenHash] = userID
    return nil
}
func (f *fakeTokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
    uid, ok := f.stored[tokenHash]
    if !ok {
        return "", repository.ErrNotFound
    }
    return uid, nil
}
func (f *fakeTokenStore) RevokeByHash(ctx context.Context, tokenHash string) error {
    delete(f.stored, tokenHash)
    return nil
}
func (f *fakeTokenStore) RevokeAllForUser(ctx context.Context, userID string) error {
    for h, uid := range f.stored {
        if uid == userID {
            delete(f.stored, h)
        }
    }
    return nil
}

func authConfig() config.Config {
    return config.Config{
        JWTSecret:      "test-secret",
        AccessTTLMin:   15,
        RefreshTTLDays: 7,
        BcryptCost:     bcrypt.MinCost,
    }
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
    req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    return e.NewContext(req, rec), rec
}

func TestRegisterSuccess(t *testing.T) {
    users := &fakeUserStore{createFn: func(ctx context.Context, name, email, password string, cost int) (string, error) {
        assert.Equal(t, "ana@example.com", email)
        return "u1", nil
    }}
    tokens := newFakeTokenStore()
    h := NewAuthHandler(authConfig(), users, tokens)

    e := echo.New()
    c, rec := postJSON(e, "/v1/auth/register", `{"name":"Ana","email":"Ana@Example.com","password":"secret-password"}`)

    require.NoError(t, h.Register(c))
    assert.Equal(t, http.StatusCreated, rec.Code)

    var resp authResp
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, "u1", resp.User.ID)
    assert.NotEmpty(t, resp.Access.Token)
    assert.NotEmpty(t, resp.Refresh.Token)
    assert.Len(t, tokens.stored, 1)
}

func TestRegisterDuplicateEmail(t *testing.T) {
    users := &fakeUserStore{createFn: func(ctx context.Context, name, email, password string, cost int) (string, error) {
        return "", repository.ErrEmailExists
    }}
    h := NewAuthHandler(authConfig(), users, newFakeTokenStore())

    e := echo.New()
    c, rec := postJSON(e, "/v1/auth/register", `{"name":"Ana","email":"ana@example.com","password":"secret-password"}`)

    require.NoError(t, h.Register(c))
    assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterInvalidBody(t *testing.T) {
    h := NewAuthHandler(authConfig(), &fakeUserStore{}, newFakeTokenStore())

    e := echo.New()
    c, rec := postJSON(e, "/v1/auth/register", `{"email":"not-an-email","password":"short"}`)

    require.NoError(t, h.Register(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
    hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
    require.NoError(t, err)
    users := &fakeUserStore{getByEmailFn: func(ctx context.Context, email string) (model.User, error) {
        return model.User{ID: "u1", Email: email, PasswordHash: string(hash)}, nil
    }}
    h := NewAuthHandler(authConfig(), users, newFakeTokenStore())

    e := echo.New()
    c, rec := postJSON(e, "/v1/auth/login", `{"email":"ana@example.com","password":"wrong-password"}`)

    require.NoError(t, h.Login(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginSuccess(t *testing.T) {
    hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
    require.NoError(t, err)
    users := &fakeUserStore{getByEmailFn: func(ctx context.Context, email string) (model.User, error) {
        return model.User{ID: "u1", Name: "Ana", Email: email, PasswordHash: string(hash)}, nil
    }}
    tokens := newFakeTokenStore()
    h := NewAuthHandler(authConfig(), users, tokens)

    e := echo.New()
    c, rec := postJSON(e, "/v1/auth/login", `{"email":"ana@example.com","password":"right-password"}`)

    require.NoError(t, h.Login(c))
    assert.Equal(t, http.StatusOK, rec.Code)

    var resp authResp
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, "Ana", resp.User.Name)
    assert.Len(t, tokens.stored, 1)
}

func TestRefreshUnknownToken(t *testing.T) {
    h := NewAuthHandler(authConfig(), &fakeUserStore{}, newFakeTokenStore())

    e := echo.New()
    c, rec := postJSON(e, "/v1/auth/refresh", `{"refresh_token":"bogus"}`)

    require.NoError(t, h.Refresh(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesAll(t *testing.T) {
    tokens := newFakeTokenStore()
    tokens.stored["h1"] = "u1"
    tokens.stored["h2"] = "u1"
    tokens.stored["h3"] = "u2"
    h := NewAuthHandler(authConfig(), &fakeUserStore{}, tokens)

    e := echo.New()
    c, rec := postJSON(e, "/v1/logout", `{}`)
    c.Set("user_id", "u1")

    require.NoError(t, h.Logout(c))
    assert.Equal(t, http.StatusNoContent, rec.Code)
    assert.Len(t, tokens.stored, 1)
}
