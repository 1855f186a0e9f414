package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"shop-backend/internal/models"
)

// ProductWithCategory is one joined row for listings and exports.
type ProductWithCategory struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Price        string    `json:"price"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	if prod.ID == uuid.Nil {
		prod.ID = uuid.New()
	}
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&prod).Error; err != nil {
		return nil, notFound(err)
	}
	return &prod, nil
}

func (r *GormRepo) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&prod).Error; err != nil {
		return nil, notFound(err)
	}
	return &prod, nil
}

func (r *GormRepo) GetProductsWithCategory(ctx context.Context) ([]ProductWithCategory, error) {
	var rows []ProductWithCategory
	err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.id, products.name, products.image, products.price, products.category_id, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Save(prod).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkInsertProducts writes the batch in one statement. Rows that collide
// with an existing unique key are skipped, and the returned count covers
// only the rows that actually landed.
func (r *GormRepo) BulkInsertProducts(ctx context.Context, products []models.Product) (int64, error) {
	for i := range products {
		if products[i].ID == uuid.Nil {
			products[i].ID = uuid.New()
		}
	}

	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
