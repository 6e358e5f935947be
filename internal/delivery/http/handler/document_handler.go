package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/planning-docs-service/internal/pkg/utils"
	"github.com/planning-docs-service/internal/usecase"
	"github.com/planning-docs-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// DocumentHandler обрабатывает запросы документов
type DocumentHandler struct {
	docUC  *usecase.DocumentUseCase
	logger *zap.Logger
}

func NewDocumentHandler(docUC *usecase.DocumentUseCase, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{docUC: docUC, logger: logger}
}

// List godoc
// @Summary Список документов
// @Tags Documents
// @Produce json
// @Success 200 {array} domain.Document
// @Failure 503 {object} utils.ErrorResponse
// @Router /documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	docs, err := h.docUC.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list documents", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, docs)
}

// Get godoc
// @Summary Документ по id
// @Tags Documents
// @Produce json
// @Param id path int true "ID документа"
// @Success 200 {object} domain.Document
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	doc, err := h.docUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, doc)
}

// Create godoc
// @Summary Создать документ
// @Description Документ, стейкхолдеры и (необязательно) геопривязка создаются одной транзакцией
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.DocumentRequest true "Документ"
// @Success 200 {object} dto.IDResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var req dto.DocumentRequest
	if err := bindJSON(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.docUC.Create(c.Context(), req.ToNewDocument())
	if err != nil {
		h.logger.Error("Failed to create document", zap.String("title", req.Title), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, dto.IDResponse{ID: id})
}

// UpdateDescription godoc
// @Summary Обновить описание документа
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path int true "ID документа"
// @Param request body dto.DescriptionRequest true "Описание"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /documents/{id}/description [patch]
func (h *DocumentHandler) UpdateDescription(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.DescriptionRequest
	if err := bindJSON(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.docUC.UpdateDescription(c.Context(), id, req.Description); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Description updated successfully")
}
