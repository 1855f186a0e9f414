package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"shop-backend/internal/events"
	"shop-backend/internal/logging"
	"shop-backend/internal/models"
	"shop-backend/internal/pagination"
	"shop-backend/internal/repo"
	"shop-backend/internal/transport"
)

var (
	ErrCategoryMissing = errors.New("Category with Id does not exist.")
	ErrProductTaken    = errors.New("Product with this name already exists.")
	ErrProductNotFound = errors.New("Product not found.")
)

type ProductService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.create")

	catID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryMissing
	}
	if _, err := s.Repo.GetCategoryByID(ctx, catID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryMissing
		}
		return nil, err
	}

	if _, err := s.Repo.GetProductByName(ctx, req.Name); err == nil {
		return nil, ErrProductTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	prod := models.Product{
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		CategoryID: catID,
	}
	if err := s.Repo.CreateProduct(ctx, &prod); err != nil {
		return nil, err
	}

	event := map[string]any{
		"type":      "product_created",
		"productID": prod.ID.String(),
		"name":      prod.Name,
	}
	if err := s.Producer.Publish(ctx, events.TopicProductEvents, prod.ID.String(), event); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	return &prod, nil
}

// List returns one page of products; the count and the window share the
// filter+search predicate.
func (s *ProductService) List(ctx context.Context, params pagination.Params) (*pagination.Page[models.Product], error) {
	return pagination.Paginate[models.Product](ctx, s.Repo.DB, params)
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	prod, err := s.Repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return prod, nil
}

// Update applies the same asymmetric merge as the category patch: only a
// non-empty provided value overwrites the stored one.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, patch transport.UpdateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.update")

	prod, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != "" {
		prod.Name = patch.Name
	}
	if patch.Image != "" {
		prod.Image = patch.Image
	}
	if patch.Price != "" {
		prod.Price = patch.Price
	}

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		return nil, err
	}

	event := map[string]any{
		"type":      "product_updated",
		"productID": prod.ID.String(),
		"name":      prod.Name,
	}
	if err := s.Producer.Publish(ctx, events.TopicProductEvents, prod.ID.String(), event); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	return prod, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	l := logging.FromContext(ctx).With("svc", "product.delete")

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	event := map[string]any{
		"type":      "product_deleted",
		"productID": id.String(),
	}
	if err := s.Producer.Publish(ctx, events.TopicProductEvents, id.String(), event); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	return nil
}

// BulkImport maps the batch onto product rows and inserts them in one call.
// Every row must reference an existing category or the whole batch fails.
// Duplicate names are skipped silently, only the inserted count is reported.
func (s *ProductService) BulkImport(ctx context.Context, reqs []transport.CreateProductRequest) (int64, error) {
	known := make(map[uuid.UUID]bool)
	products := make([]models.Product, 0, len(reqs))
	for _, req := range reqs {
		catID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return 0, ErrCategoryMissing
		}
		if !known[catID] {
			if _, err := s.Repo.GetCategoryByID(ctx, catID); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return 0, ErrCategoryMissing
				}
				return 0, err
			}
			known[catID] = true
		}
		products = append(products, models.Product{
			Name:       req.Name,
			Image:      req.Image,
			Price:      req.Price,
			CategoryID: catID,
		})
	}

	return s.Repo.BulkInsertProducts(ctx, products)
}

// ExportRows flattens products for tabular export the way the list join
// shapes them: the category id is replaced by the category name.
func (s *ProductService) ExportRows(ctx context.Context) ([]map[string]string, error) {
	rows, err := s.Repo.GetProductsWithCategory(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, map[string]string{
			"id":       row.ID.String(),
			"name":     row.Name,
			"image":    row.Image,
			"price":    row.Price,
			"category": row.CategoryName,
		})
	}
	return records, nil
}
