package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"shop-backend/internal/events"
	"shop-backend/internal/logging"
	"shop-backend/internal/models"
	"shop-backend/internal/repo"
	"shop-backend/internal/transport"
)

var (
	ErrCategoryTaken    = errors.New("Category with this name already exists.")
	ErrCategoryNotFound = errors.New("Category not found.")
)

type CategoryService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (s *CategoryService) Create(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	l := logging.FromContext(ctx).With("svc", "category.create")

	if _, err := s.Repo.GetCategoryByName(ctx, req.Name); err == nil {
		return nil, ErrCategoryTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	cat := models.Category{Name: req.Name, Description: req.Description}
	if err := s.Repo.CreateCategory(ctx, &cat); err != nil {
		return nil, err
	}

	event := map[string]any{
		"type":       "category_created",
		"categoryID": cat.ID.String(),
		"name":       cat.Name,
	}
	if err := s.Producer.Publish(ctx, events.TopicCatalogEvents, cat.ID.String(), event); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	return &cat, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.Repo.GetCategories(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	cat, err := s.Repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return cat, nil
}

// Update applies the asymmetric merge: a field overwrites only when the
// patch carries a non-empty value for it.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, patch transport.UpdateCategoryRequest) (*models.Category, error) {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != "" {
		cat.Name = patch.Name
	}
	if patch.Description != "" {
		cat.Description = patch.Description
	}

	if err := s.Repo.SaveCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	l := logging.FromContext(ctx).With("svc", "category.delete")

	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	event := map[string]any{
		"type":       "category_deleted",
		"categoryID": id.String(),
	}
	if err := s.Producer.Publish(ctx, events.TopicCatalogEvents, id.String(), event); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	return nil
}
