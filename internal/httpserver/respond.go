package httpserver

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
)

// FieldError is one itemized validation failure, express-validator shaped.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func jsonError(c echo.Context, code int, err error) error {
	return c.JSON(code, echo.Map{"error": err.Error()})
}

func validationFailed(c echo.Context, errs []FieldError) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
}
