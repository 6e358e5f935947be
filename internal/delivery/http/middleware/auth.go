package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/planning-docs-service/internal/domain"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
	"github.com/planning-docs-service/internal/pkg/utils"
	"github.com/planning-docs-service/internal/usecase"
)

const sessionLocalsKey = "session"

// RequireAuth загружает сессию из cookie; без сессии - 401
func RequireAuth(authUC *usecase.AuthUseCase, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := authUC.Current(c.Context(), c.Cookies(cookieName))
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(sessionLocalsKey, session)
		return c.Next()
	}
}

// RequireRole пропускает только пользователей с ролью role; ставится после RequireAuth
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := Session(c)
		if session == nil {
			return utils.SendError(c, apperrors.ErrNotAuthenticated)
		}
		if session.User.Role != role {
			return utils.SendError(c, apperrors.ErrNotPlanner)
		}
		return c.Next()
	}
}

// Session returns the session stored by RequireAuth, or nil.
func Session(c *fiber.Ctx) *domain.Session {
	session, _ := c.Locals(sessionLocalsKey).(*domain.Session)
	return session
}
