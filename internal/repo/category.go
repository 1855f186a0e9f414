package repo

import (
	"context"

	"github.com/google/uuid"

	"shop-backend/internal/models"
)

func (r *GormRepo) CreateCategory(ctx context.Context, cat *models.Category) error {
	if cat.ID == uuid.Nil {
		cat.ID = uuid.New()
	}
	return r.DB.WithContext(ctx).Create(cat).Error
}

func (r *GormRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.DB.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var cat models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&cat).Error; err != nil {
		return nil, notFound(err)
	}
	return &cat, nil
}

func (r *GormRepo) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&cat).Error; err != nil {
		return nil, notFound(err)
	}
	return &cat, nil
}

func (r *GormRepo) SaveCategory(ctx context.Context, cat *models.Category) error {
	return r.DB.WithContext(ctx).Save(cat).Error
}

// DeleteCategory removes the dependent products before the category itself,
// so no product is ever left referencing a missing category.
func (r *GormRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := r.DB.WithContext(ctx).
		Where("category_id = ?", id).
		Delete(&models.Product{}).Error; err != nil {
		return err
	}

	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
