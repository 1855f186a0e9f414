package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shop-backend/internal/logging"
	"shop-backend/internal/service"
	"shop-backend/internal/transport"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func categoryIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return uuid.Nil, errors.New("Invalid category id.")
	}
	return id, nil
}

func (h *CategoryHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	var errs []FieldError
	if len(req.Name) < 3 {
		errs = append(errs, FieldError{Msg: "Enter the valid name", Param: "name"})
	}
	if req.Description == "" {
		errs = append(errs, FieldError{Msg: "Please enter the description", Param: "description"})
	}
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	cat, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryTaken) {
			l.Warn("category_create_failed", "status", 400, "reason", "duplicate name")
			return jsonError(c, http.StatusBadRequest, err)
		}
		l.Error("category_create_failed", "status", 500, "error", err)
		return jsonError(c, http.StatusInternalServerError, err)
	}

	l.Info("category_create_success", "category_id", cat.ID.String())
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Category with name: %s is created.", cat.Name),
		"data":    cat,
	})
}

func (h *CategoryHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.Svc.List(ctx)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := categoryIDParam(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	cat, err := h.Svc.Get(ctx, id)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	id, err := categoryIDParam(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	var req transport.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	// Provided values are validated, empty ones fall through to the merge
	// rule and keep the stored value.
	if req.Name != "" && len(req.Name) < 3 {
		return validationFailed(c, []FieldError{{Msg: "Enter the valid name", Param: "name"}})
	}

	cat, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		l.Warn("category_update_failed", "status", 400, "error", err)
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Category updated successfully.",
		"data":    cat,
	})
}

func (h *CategoryHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := categoryIDParam(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("category_delete_failed", "status", 400, "error", err)
		return jsonError(c, http.StatusBadRequest, err)
	}

	l.Info("category_delete_success", "category_id", id.String())
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Category deleted successfully.",
	})
}
