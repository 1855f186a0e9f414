package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shop-backend/internal/export"
	"shop-backend/internal/logging"
	"shop-backend/internal/pagination"
	"shop-backend/internal/service"
	"shop-backend/internal/transport"
)

const exportFileName = "product"

type ProductHTTP struct {
	Svc *service.ProductService
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func productIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return uuid.Nil, errors.New("Invalid product id.")
	}
	return id, nil
}

func validateCreateProduct(req transport.CreateProductRequest) []FieldError {
	var errs []FieldError
	if len(req.Name) < 3 {
		errs = append(errs, FieldError{Msg: "Enter the name of the product", Param: "name"})
	}
	if len(req.Image) < 5 {
		errs = append(errs, FieldError{Msg: "Enter the image file name", Param: "image"})
	}
	if req.Price == "" {
		errs = append(errs, FieldError{Msg: "Enter the price of the product", Param: "price"})
	}
	if req.CategoryID == "" {
		errs = append(errs, FieldError{Msg: "Enter the category id", Param: "categoryId"})
	}
	return errs
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	if errs := validateCreateProduct(req); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	prod, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryMissing) || errors.Is(err, service.ErrProductTaken) {
			l.Warn("product_create_failed", "status", 400, "error", err)
			return jsonError(c, http.StatusBadRequest, err)
		}
		l.Error("product_create_failed", "status", 500, "error", err)
		return jsonError(c, http.StatusInternalServerError, err)
	}

	l.Info("product_create_success", "product_id", prod.ID.String())
	return c.JSON(http.StatusCreated, prod)
}

// List serves GET /all with page, limit, filter (JSON), search and sort
// query parameters.
func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	params := pagination.Params{
		Page:   parseIntDefault(c.QueryParam("page"), 1),
		Limit:  parseIntDefault(c.QueryParam("limit"), pagination.DefaultLimit),
		Filter: pagination.ParseFilter(c.QueryParam("filter")),
		Search: c.QueryParam("search"),
		Sort:   c.QueryParam("sort"),
	}

	page, err := h.Svc.List(ctx, params)
	if err != nil {
		l.Error("product_list_failed", "status", 400, "error", err)
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"data":       page.Data,
		"total":      page.Total,
		"page":       page.Page,
		"totalPages": page.TotalPages,
		"limit":      page.Limit,
	})
}

func (h *ProductHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := productIDParam(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	prod, err := h.Svc.Get(ctx, id)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    prod,
	})
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := productIDParam(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	prod, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		l.Warn("product_update_failed", "status", 400, "error", err)
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Product updated successfully.",
		"data":    prod,
	})
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := productIDParam(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("product_delete_failed", "status", 400, "error", err)
		return jsonError(c, http.StatusBadRequest, err)
	}

	l.Info("product_delete_success", "product_id", id.String())
	return c.JSON(http.StatusOK, fmt.Sprintf("Product with Id: %s has been deleted.", id))
}

func (h *ProductHTTP) BulkUpload(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.bulk_upload")

	var req transport.BulkUploadRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	if len(req.Products) == 0 {
		return validationFailed(c, []FieldError{{Msg: "Products array is required", Param: "products"}})
	}

	inserted, err := h.Svc.BulkImport(ctx, req.Products)
	if err != nil {
		if errors.Is(err, service.ErrCategoryMissing) {
			l.Warn("bulk_upload_failed", "status", 400, "error", err)
			return jsonError(c, http.StatusBadRequest, err)
		}
		l.Error("bulk_upload_failed", "status", 500, "error", err)
		return jsonError(c, http.StatusInternalServerError, err)
	}

	l.Info("bulk_upload_success", "inserted", inserted)
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": fmt.Sprintf("%d products uploaded successfully", inserted),
	})
}

func (h *ProductHTTP) Download(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.download")

	format, err := export.ParseFormat(c.Param("filetype"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	records, err := h.Svc.ExportRows(ctx)
	if err != nil {
		l.Error("download_failed", "status", 400, "error", err)
		return jsonError(c, http.StatusBadRequest, err)
	}

	data, err := export.Render(records, format)
	if err != nil {
		l.Error("download_failed", "status", 500, "error", err)
		return c.String(http.StatusInternalServerError, "Error downloading the file.")
	}

	filename := fmt.Sprintf("%s.%s", exportFileName, format)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))

	l.Info("download_success", "format", string(format), "rows", len(records))
	return c.Blob(http.StatusOK, format.ContentType(), data)
}
