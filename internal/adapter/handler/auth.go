package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/meetsum/meeting-summarizer/internal/adapter/dto/auth"
	"github.com/meetsum/meeting-summarizer/internal/domain/repositories"
	"github.com/meetsum/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/meetsum/meeting-summarizer/internal/usecase/auth"
)

// Auth handles the development authentication endpoints
type Auth struct {
	authService auth.Service
	userRepo    repositories.UserRepository
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService auth.Service, userRepo repositories.UserRepository, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// DevLogin issues an access token for an email/password pair
func (h *Auth) DevLogin(c echo.Context) error {
	var req authdto.DevLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.DevLogin(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, authdto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        authdto.UserFromEntity(user),
	})
}

// Me returns the authenticated caller's profile
func (h *Auth) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepo.FindByID(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, authdto.UserFromEntity(user))
}
