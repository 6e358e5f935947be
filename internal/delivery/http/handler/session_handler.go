package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/planning-docs-service/internal/config"
	"github.com/planning-docs-service/internal/delivery/http/middleware"
	"github.com/planning-docs-service/internal/pkg/utils"
	"github.com/planning-docs-service/internal/usecase"
	"github.com/planning-docs-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// SessionHandler - вход и выход пользователей
type SessionHandler struct {
	authUC *usecase.AuthUseCase
	cfg    config.SessionConfig
	logger *zap.Logger
}

func NewSessionHandler(authUC *usecase.AuthUseCase, cfg config.SessionConfig, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		authUC: authUC,
		cfg:    cfg,
		logger: logger,
	}
}

// Login godoc
// @Summary Вход
// @Description Проверяет логин и пароль, выставляет cookie сессии
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учётные данные"
// @Success 200 {object} domain.User
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	session, err := h.authUC.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TTL),
		HTTPOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return utils.SendJSON(c, session.User)
}

// Current godoc
// @Summary Текущий пользователь
// @Tags Sessions
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} utils.ErrorResponse
// @Router /sessions/current [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	return utils.SendJSON(c, middleware.Session(c).User)
}

// Logout godoc
// @Summary Выход
// @Tags Sessions
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /sessions/current [delete]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.authUC.Logout(c.Context(), middleware.Session(c).ID); err != nil {
		h.logger.Error("Failed to delete session", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.ClearCookie(h.cfg.CookieName)
	return utils.SendMessage(c, "Logged out")
}
