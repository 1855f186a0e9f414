package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shop-backend/internal/logging"
	"shop-backend/internal/service"
	"shop-backend/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func validateSignup(req transport.SignupRequest) []FieldError {
	var errs []FieldError
	if len(req.Name) < 3 {
		errs = append(errs, FieldError{Msg: "Enter the valid name", Param: "name"})
	}
	if !emailRe.MatchString(req.Email) {
		errs = append(errs, FieldError{Msg: "Enter the valid mail id", Param: "email"})
	}
	if len(req.Password) < 5 {
		errs = append(errs, FieldError{Msg: "Password must be atleast 5 characters", Param: "password"})
	}
	return errs
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_failed", "status", 400, "reason", "invalid body", "error", err)
		return jsonError(c, http.StatusBadRequest, err)
	}

	if errs := validateSignup(req); len(errs) > 0 {
		l.Warn("signup_failed", "status", 400, "reason", "validation")
		return validationFailed(c, errs)
	}

	token, err := h.Svc.Signup(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			l.Warn("signup_failed", "status", 400, "reason", "email already registered")
			return jsonError(c, http.StatusBadRequest, err)
		}
		l.Error("signup_failed", "status", 500, "error", err)
		return jsonError(c, http.StatusInternalServerError, err)
	}

	l.Info("signup_success")
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User created successfully.",
		"token":   token,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	var errs []FieldError
	if !emailRe.MatchString(req.Email) {
		errs = append(errs, FieldError{Msg: "Enter the valid mail id", Param: "email"})
	}
	if len(req.Password) < 5 {
		errs = append(errs, FieldError{Msg: "Password must be atleast 5 characters", Param: "password"})
	}
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	token, err := h.Svc.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogin) {
			l.Warn("login_failed", "status", 400, "reason", "invalid credentials")
			return jsonError(c, http.StatusBadRequest, err)
		}
		l.Error("login_failed", "status", 500, "error", err)
		return jsonError(c, http.StatusInternalServerError, err)
	}

	l.Info("login_success")
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Login successful.",
		"token":   token,
	})
}

func (h *AuthHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.Svc.Users(ctx)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    users,
	})
}

func userIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return 0, errors.New("Invalid user id.")
	}
	return uint(id), nil
}

func (h *AuthHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := userIDParam(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	user, err := h.Svc.User(ctx, id)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    user,
	})
}

func (h *AuthHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.update_user")

	id, err := userIDParam(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	if len(req.Name) < 3 {
		return validationFailed(c, []FieldError{{Msg: "Enter the valid name", Param: "name"}})
	}

	user, err := h.Svc.UpdateUserName(ctx, id, req.Name)
	if err != nil {
		l.Warn("update_user_failed", "status", 400, "error", err)
		return jsonError(c, http.StatusBadRequest, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User updated successfully.",
		"data":    user,
	})
}

func (h *AuthHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.delete_user")

	id, err := userIDParam(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		l.Warn("delete_user_failed", "status", 400, "error", err)
		return jsonError(c, http.StatusBadRequest, err)
	}

	l.Info("delete_user_success", "user_id", id)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User deleted successfully.",
	})
}
