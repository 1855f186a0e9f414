package pagination

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shop-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))
	return db
}

func seedProducts(t *testing.T, db *gorm.DB, catID uuid.UUID, n int) {
	for i := 1; i <= n; i++ {
		prod := models.Product{
			ID:         uuid.New(),
			Name:       fmt.Sprintf("prod-%02d", i),
			Price:      "1",
			CategoryID: catID,
		}
		require.NoError(t, db.Create(&prod).Error)
	}
}

func TestPaginateWindowAndCount(t *testing.T) {
	db := newTestDB(t)
	catID := uuid.New()
	seedProducts(t, db, catID, 12)

	page, err := Paginate[models.Product](context.Background(), db, Params{
		Page:  2,
		Limit: 5,
		Sort:  "ASC",
	})
	require.NoError(t, err)
	require.EqualValues(t, 12, page.Total)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 5, page.Limit)
	require.Len(t, page.Data, 5)
	require.Equal(t, "prod-06", page.Data[0].Name)
	require.Equal(t, "prod-10", page.Data[4].Name)
}

func TestPaginateDefaultsAndSortDesc(t *testing.T) {
	db := newTestDB(t)
	seedProducts(t, db, uuid.New(), 12)

	// zero params fall back to page 1, limit 10, DESC on name
	page, err := Paginate[models.Product](context.Background(), db, Params{})
	require.NoError(t, err)
	require.Equal(t, 1, page.Page)
	require.Equal(t, DefaultLimit, page.Limit)
	require.Len(t, page.Data, 10)
	require.Equal(t, "prod-12", page.Data[0].Name)
	require.Equal(t, 2, page.TotalPages)
}

func TestPaginateSearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	catID := uuid.New()
	require.NoError(t, db.Create(&models.Product{ID: uuid.New(), Name: "Blue Atlas", Price: "1", CategoryID: catID}).Error)
	require.NoError(t, db.Create(&models.Product{ID: uuid.New(), Name: "red globe", Price: "1", CategoryID: catID}).Error)
	require.NoError(t, db.Create(&models.Product{ID: uuid.New(), Name: "ATLAS mini", Price: "1", CategoryID: catID}).Error)

	page, err := Paginate[models.Product](context.Background(), db, Params{Search: "atlas"})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
	require.Len(t, page.Data, 2)
	for _, p := range page.Data {
		require.Contains(t, []string{"Blue Atlas", "ATLAS mini"}, p.Name)
	}
}

func TestPaginateFilterPredicate(t *testing.T) {
	db := newTestDB(t)
	catA, catB := uuid.New(), uuid.New()
	seedProducts(t, db, catA, 3)
	require.NoError(t, db.Create(&models.Product{ID: uuid.New(), Name: "other", Price: "2", CategoryID: catB}).Error)

	page, err := Paginate[models.Product](context.Background(), db, Params{
		Filter: map[string]any{"category_id": catA.String()},
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, page.Total)
	for _, p := range page.Data {
		require.Equal(t, catA, p.CategoryID)
	}

	// count and window must reflect the same predicate
	require.LessOrEqual(t, len(page.Data), page.Limit)
}

func TestPaginateFilterAcceptsJSONFieldNames(t *testing.T) {
	db := newTestDB(t)
	catA, catB := uuid.New(), uuid.New()
	seedProducts(t, db, catA, 3)
	require.NoError(t, db.Create(&models.Product{ID: uuid.New(), Name: "other", Price: "2", CategoryID: catB}).Error)

	// clients filter by the JSON field name, not the column name
	page, err := Paginate[models.Product](context.Background(), db, Params{
		Filter: map[string]any{"categoryId": catA.String()},
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, page.Total)
	for _, p := range page.Data {
		require.Equal(t, catA, p.CategoryID)
	}
}

func TestPaginateDropsUnsafeFilterKeys(t *testing.T) {
	db := newTestDB(t)
	seedProducts(t, db, uuid.New(), 2)

	page, err := Paginate[models.Product](context.Background(), db, Params{
		Filter: map[string]any{"name; DROP TABLE products": "x"},
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
}

func TestParseFilter(t *testing.T) {
	require.Equal(t, map[string]any{}, ParseFilter(""))
	require.Equal(t, map[string]any{}, ParseFilter("{not json"))
	require.Equal(t, map[string]any{"price": "10"}, ParseFilter(`{"price":"10"}`))
}
