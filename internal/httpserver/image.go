package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-backend/internal/assets"
	"shop-backend/internal/logging"
)

type ImageHTTP struct {
	Store *assets.Store
}

func (h *ImageHTTP) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.upload")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No file uploaded"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		l.Error("image_upload_failed", "status", 500, "error", err)
		return jsonError(c, http.StatusInternalServerError, err)
	}
	defer src.Close()

	name, err := h.Store.Save(src, fileHeader.Filename)
	if err != nil {
		l.Error("image_upload_failed", "status", 500, "error", err)
		return jsonError(c, http.StatusInternalServerError, err)
	}

	l.Info("image_upload_success", "filename", name)
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "File uploaded successfully",
		"filename": name,
	})
}

func (h *ImageHTTP) Get(c echo.Context) error {
	path, err := h.Store.Path(c.Param("filename"))
	if err != nil {
		return imageStoreError(c, err)
	}
	return c.File(path)
}

func (h *ImageHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.delete")

	name := c.Param("filename")
	if err := h.Store.Delete(name); err != nil {
		if errors.Is(err, assets.ErrNotFound) || errors.Is(err, assets.ErrInvalidName) {
			return imageStoreError(c, err)
		}
		l.Error("image_delete_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete file"})
	}

	l.Info("image_delete_success", "filename", name)
	return c.JSON(http.StatusOK, echo.Map{"message": "File deleted successfully"})
}

func imageStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, assets.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "File not found"})
	case errors.Is(err, assets.ErrInvalidName):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid filename"})
	default:
		return jsonError(c, http.StatusInternalServerError, err)
	}
}
