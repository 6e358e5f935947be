package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/planning-docs-service/internal/pkg/utils"
	"github.com/planning-docs-service/internal/usecase"
	"github.com/planning-docs-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type LinkHandler struct {
	linkUC *usecase.LinkUseCase
	logger *zap.Logger
}

func NewLinkHandler(linkUC *usecase.LinkUseCase, logger *zap.Logger) *LinkHandler {
	return &LinkHandler{linkUC: linkUC, logger: logger}
}

// GetByDocument godoc
// @Summary Связи документа
// @Tags Links
// @Produce json
// @Param id path int true "ID документа"
// @Success 200 {array} domain.Link
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /links/{id} [get]
func (h *LinkHandler) GetByDocument(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	links, err := h.linkUC.GetByDocument(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, links)
}

// Create godoc
// @Summary Связать документы
// @Tags Links
// @Accept json
// @Produce json
// @Param request body dto.LinkRequest true "Связь"
// @Success 200 {object} dto.IDResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /links [post]
func (h *LinkHandler) Create(c *fiber.Ctx) error {
	var req dto.LinkRequest
	if err := bindJSON(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.linkUC.Create(c.Context(), req.ToLink())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, dto.IDResponse{ID: id})
}

// Delete godoc
// @Summary Удалить связь
// @Tags Links
// @Produce json
// @Param id path int true "ID связи"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /links/{id} [delete]
func (h *LinkHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.linkUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Link deleted successfully")
}
