package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"shop-backend/internal/models"
)

func seedCategory(t *testing.T, env *testEnv, name string) *models.Category {
	t.Helper()

	cat := &models.Category{Name: name, Description: "d"}
	require.NoError(t, env.Repo.CreateCategory(context.Background(), cat))
	return cat
}

func TestProductCreate(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupToken(t)
	cat := seedCategory(t, env, "books")

	rec := env.doJSON(t, http.MethodPost, "/api/product", map[string]string{
		"name":       "atlas",
		"image":      "atlas.png",
		"price":      "12.50",
		"categoryId": cat.ID.String(),
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeMap(t, rec)
	require.Equal(t, "atlas", body["name"])
	require.Equal(t, "12.50", body["price"])

	missingCat := env.doJSON(t, http.MethodPost, "/api/product", map[string]string{
		"name":       "globe",
		"image":      "globe.png",
		"price":      "7",
		"categoryId": uuid.NewString(),
	}, token)
	require.Equal(t, http.StatusBadRequest, missingCat.Code)
	require.Equal(t, "Category with Id does not exist.", decodeMap(t, missingCat)["error"])
}

func TestProductCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupToken(t)

	rec := env.doJSON(t, http.MethodPost, "/api/product", map[string]string{
		"name":  "ab",
		"image": "x",
	}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errs, ok := decodeMap(t, rec)["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 4)
}

func TestProductListPagination(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupToken(t)
	cat := seedCategory(t, env, "books")

	for i := 1; i <= 12; i++ {
		err := env.Repo.CreateProduct(context.Background(), &models.Product{
			Name:       fmt.Sprintf("prod-%02d", i),
			Price:      "1",
			CategoryID: cat.ID,
		})
		require.NoError(t, err)
	}

	rec := env.doJSON(t, http.MethodGet, "/api/product/all?page=2&limit=5&sort=ASC", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeMap(t, rec)
	require.Equal(t, true, body["success"])
	require.EqualValues(t, 12, body["total"])
	require.EqualValues(t, 3, body["totalPages"])
	require.EqualValues(t, 2, body["page"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 5)
	first := data[0].(map[string]any)
	require.Equal(t, "prod-06", first["name"])
}

func TestProductBulkUpload(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupToken(t)
	cat := seedCategory(t, env, "books")

	empty := env.doJSON(t, http.MethodPost, "/api/product/bulk-upload", map[string]any{
		"products": []any{},
	}, token)
	require.Equal(t, http.StatusBadRequest, empty.Code)

	require.NoError(t, env.Repo.CreateProduct(context.Background(), &models.Product{
		Name: "atlas", Price: "1", CategoryID: cat.ID,
	}))

	rec := env.doJSON(t, http.MethodPost, "/api/product/bulk-upload", map[string]any{
		"products": []map[string]string{
			{"name": "atlas", "image": "dup.png", "price": "1", "categoryId": cat.ID.String()},
			{"name": "globe", "image": "globe.png", "price": "2", "categoryId": cat.ID.String()},
			{"name": "compass", "image": "compass.png", "price": "3", "categoryId": cat.ID.String()},
		},
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "2 products uploaded successfully", decodeMap(t, rec)["message"])

	badCat := env.doJSON(t, http.MethodPost, "/api/product/bulk-upload", map[string]any{
		"products": []map[string]string{
			{"name": "sextant", "image": "sextant.png", "price": "4", "categoryId": uuid.NewString()},
		},
	}, token)
	require.Equal(t, http.StatusBadRequest, badCat.Code)
	require.Equal(t, "Category with Id does not exist.", decodeMap(t, badCat)["error"])
}

func TestProductDownload(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupToken(t)
	cat := seedCategory(t, env, "books")

	require.NoError(t, env.Repo.CreateProduct(context.Background(), &models.Product{
		Name: "atlas", Image: "atlas.png", Price: "12.50", CategoryID: cat.ID,
	}))

	rec := env.doJSON(t, http.MethodGet, "/api/product/download/csv", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, rec.Header().Get("Content-Disposition"), "product.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "CATEGORY,ID,IMAGE,NAME,PRICE", lines[0])
	require.Contains(t, lines[1], "books")
	require.Contains(t, lines[1], "atlas")

	bad := env.doJSON(t, http.MethodGet, "/api/product/download/pdf", nil, token)
	require.Equal(t, http.StatusBadRequest, bad.Code)
	require.Equal(t, "Please enter the correct filetype", decodeMap(t, bad)["error"])
}

func TestCategoryEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupToken(t)

	rec := env.doJSON(t, http.MethodPost, "/api/category", map[string]string{
		"name": "books", "description": "paper",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Category with name: books is created.", decodeMap(t, rec)["message"])

	dup := env.doJSON(t, http.MethodPost, "/api/category", map[string]string{
		"name": "books", "description": "again",
	}, token)
	require.Equal(t, http.StatusBadRequest, dup.Code)
	require.Equal(t, "Category with this name already exists.", decodeMap(t, dup)["error"])

	list := env.doJSON(t, http.MethodGet, "/api/category/all", nil, token)
	require.Equal(t, http.StatusOK, list.Code)
}
