package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pterostore/business/user"
	"pterostore/domain"
	"pterostore/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(ctx context.Context, input user.RegisterInput) (domain.User, error)
	Login(ctx context.Context, identifier, password string) (string, domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	UpdateProfile(ctx context.Context, id string, update user.ProfileUpdate) (domain.User, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type RegisterRequest struct {
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	Whatsapp    *string `json:"whatsapp"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileUpdateRequest struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	Whatsapp    *string `json:"whatsapp"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Email, username, dan password harus diisi"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.userService.Register(ctx, user.RegisterInput{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Whatsapp:    req.Whatsapp,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRegisterFields), errors.Is(err, user.ErrPasswordTooShort):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case errors.Is(err, user.ErrEmailTaken), errors.Is(err, user.ErrUsernameTaken):
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		}
		return serverError(c, "Failed to register user", err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Registrasi berhasil",
		"user": map[string]interface{}{
			"id":       created.ID,
			"email":    created.Email,
			"username": created.Username,
			"fullName": created.FullName,
		},
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Email dan password harus diisi"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, account, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingLoginFields):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case errors.Is(err, user.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, ResponseError{Message: err.Error()})
		}
		return serverError(c, "Failed to login", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login berhasil",
		"token":   token,
		"user":    account.Summary(),
	})
}

// Me returns the authenticated account. The password hash never leaves the
// domain model.
func (h *UserHandler) Me(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	account, err := h.userService.GetByID(ctx, userID(c))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, ResponseError{Message: "Token tidak valid"})
		}
		return serverError(c, "Failed to load current user", err)
	}

	return c.JSON(http.StatusOK, account)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req ProfileUpdateRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.userService.UpdateProfile(ctx, userID(c), user.ProfileUpdate{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Whatsapp:    req.Whatsapp,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return serverError(c, "Failed to update profile", err)
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Password tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.userService.ChangePassword(ctx, userID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidPassword):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case errors.Is(err, user.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return serverError(c, "Failed to change password", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Password berhasil diubah",
	})
}
