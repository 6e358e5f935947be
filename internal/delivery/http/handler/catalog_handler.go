package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/planning-docs-service/internal/pkg/utils"
	"github.com/planning-docs-service/internal/usecase"
	"github.com/planning-docs-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CatalogHandler - стейкхолдеры, масштабы и типы документов
type CatalogHandler struct {
	stakeholderUC *usecase.StakeholderUseCase
	catalogUC     *usecase.CatalogUseCase
	logger        *zap.Logger
}

func NewCatalogHandler(stakeholderUC *usecase.StakeholderUseCase, catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		stakeholderUC: stakeholderUC,
		catalogUC:     catalogUC,
		logger:        logger,
	}
}

// GetStakeholders godoc
// @Summary Стейкхолдеры
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Stakeholder
// @Failure 404 {object} utils.ErrorResponse
// @Router /stakeholders [get]
func (h *CatalogHandler) GetStakeholders(c *fiber.Ctx) error {
	stakeholders, err := h.stakeholderUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, stakeholders)
}

// CreateStakeholder godoc
// @Summary Добавить стейкхолдера
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.StakeholderRequest true "Стейкхолдер"
// @Success 200 {object} dto.IDResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /stakeholders [post]
func (h *CatalogHandler) CreateStakeholder(c *fiber.Ctx) error {
	var req dto.StakeholderRequest
	if err := bindJSON(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.stakeholderUC.Create(c.Context(), req.Name, req.Color)
	if err != nil {
		h.logger.Error("Failed to create stakeholder", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, dto.IDResponse{ID: id})
}

// GetScales godoc
// @Summary Масштабы
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Scale
// @Failure 404 {object} utils.ErrorResponse
// @Router /scales [get]
func (h *CatalogHandler) GetScales(c *fiber.Ctx) error {
	scales, err := h.catalogUC.GetScales(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, scales)
}

// AddScale godoc
// @Summary Добавить масштаб
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.NameRequest true "Масштаб"
// @Success 200 {object} dto.IDResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /scales [post]
func (h *CatalogHandler) AddScale(c *fiber.Ctx) error {
	var req dto.NameRequest
	if err := bindJSON(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.catalogUC.AddScale(c.Context(), req.Name)
	if err != nil {
		h.logger.Error("Failed to add scale", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, dto.IDResponse{ID: id})
}

// GetTypes godoc
// @Summary Типы документов
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.DocumentType
// @Failure 404 {object} utils.ErrorResponse
// @Router /types [get]
func (h *CatalogHandler) GetTypes(c *fiber.Ctx) error {
	types, err := h.catalogUC.GetTypes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, types)
}

// AddType godoc
// @Summary Добавить тип документа
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.NameRequest true "Тип"
// @Success 200 {object} dto.IDResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /types [post]
func (h *CatalogHandler) AddType(c *fiber.Ctx) error {
	var req dto.NameRequest
	if err := bindJSON(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.catalogUC.AddType(c.Context(), req.Name)
	if err != nil {
		h.logger.Error("Failed to add document type", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, dto.IDResponse{ID: id})
}
