package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/planning-docs-service/internal/pkg/utils"
	"github.com/planning-docs-service/internal/usecase"
	"github.com/planning-docs-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CoordinateHandler - геопривязка документов
type CoordinateHandler struct {
	coordUC *usecase.CoordinateUseCase
	logger  *zap.Logger
}

func NewCoordinateHandler(coordUC *usecase.CoordinateUseCase, logger *zap.Logger) *CoordinateHandler {
	return &CoordinateHandler{
		coordUC: coordUC,
		logger:  logger,
	}
}

// GetAll godoc
// @Summary Документы с координатами
// @Description Все документы со стейкхолдерами и упорядоченными точками геопривязки
// @Tags Coordinates
// @Produce json
// @Success 200 {array} domain.DocCoordinates
// @Failure 503 {object} utils.ErrorResponse
// @Router /coordinates/ [get]
func (h *CoordinateHandler) GetAll(c *fiber.Ctx) error {
	docs, err := h.coordUC.GetAllDocumentsCoordinates(c.Context())
	if err != nil {
		h.logger.Error("Failed to get documents coordinates", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, docs)
}

// GetExistingGeoreferences godoc
// @Summary Существующие геопривязки
// @Description Группы точек по документам, без документов с геопривязкой ко всему муниципалитету
// @Tags Coordinates
// @Produce json
// @Success 200 {array} []domain.Coordinate
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /coordinates/georeferences [get]
func (h *CoordinateHandler) GetExistingGeoreferences(c *fiber.Ctx) error {
	groups, err := h.coordUC.GetExistingGeoreferences(c.Context())
	if err != nil {
		h.logger.Error("Failed to get existing georeferences", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, groups)
}

// Set godoc
// @Summary Задать геопривязку документа
// @Description coordinates - точка, массив точек или пусто (весь муниципалитет)
// @Tags Coordinates
// @Accept json
// @Produce json
// @Param request body dto.CoordinatesRequest true "Геопривязка"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /coordinates/ [post]
func (h *CoordinateHandler) Set(c *fiber.Ctx) error {
	var req dto.CoordinatesRequest
	if err := bindJSON(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.coordUC.SetDocumentCoordinates(c.Context(), req.IDDoc, req.Coordinates.AsLatLng()); err != nil {
		h.logger.Error("Failed to set coordinates", zap.Int64("document_id", req.IDDoc), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Coordinates set successfully")
}

// Update godoc
// @Summary Заменить геопривязку документа
// @Tags Coordinates
// @Accept json
// @Produce json
// @Param request body dto.CoordinatesRequest true "Геопривязка"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /coordinates/update [post]
func (h *CoordinateHandler) Update(c *fiber.Ctx) error {
	var req dto.CoordinatesRequest
	if err := bindJSON(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.coordUC.UpdateDocumentCoordinates(c.Context(), req.IDDoc, req.Coordinates.AsLatLng()); err != nil {
		h.logger.Error("Failed to update coordinates", zap.Int64("document_id", req.IDDoc), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Coordinates updated successfully")
}

// Delete godoc
// @Summary Удалить геопривязку документа
// @Tags Coordinates
// @Produce json
// @Param id path int true "ID документа"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /coordinates/{id} [delete]
func (h *CoordinateHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.coordUC.DeleteDocumentCoordinatesByID(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete coordinates", zap.Int64("document_id", id), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Coordinates deleted successfully")
}
