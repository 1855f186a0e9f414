package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shop-backend/internal/assets"
	"shop-backend/internal/logging"
	"shop-backend/internal/models"
	"shop-backend/internal/repo"
	"shop-backend/internal/service"
)

type testEnv struct {
	E      *echo.Echo
	DB     *gorm.DB
	Repo   *repo.GormRepo
	Secret []byte
	Store  *assets.Store
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Credential{}, &models.Category{}, &models.Product{},
	))

	r := repo.New(db)
	secret := []byte("test_secret")

	store, err := assets.NewStore(t.TempDir())
	require.NoError(t, err)

	deps := &Deps{
		Logger:    logging.New("error"),
		JWTSecret: secret,
		Origin:    "http://localhost:3000",
		Auth:      &AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: secret}},
		Category:  &CategoryHTTP{Svc: &service.CategoryService{Repo: r}},
		Product:   &ProductHTTP{Svc: &service.ProductService{Repo: r}},
		Image:     &ImageHTTP{Store: store},
	}

	e := echo.New()
	Register(e, deps)

	return &testEnv{E: e, DB: db, Repo: r, Secret: secret, Store: store}
}

func (env *testEnv) doJSON(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) signupToken(t *testing.T) string {
	t.Helper()

	rec := env.doJSON(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"name":     "Ann Lee",
		"email":    "ann@example.com",
		"password": "secret",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}
