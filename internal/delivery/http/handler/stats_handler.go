package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/planning-docs-service/internal/pkg/utils"
	"github.com/planning-docs-service/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetGeoreferenceStats godoc
// @Summary Статистика геопривязок
// @Description Количество документов по виду геопривязки: точка, полигон, весь муниципалитет, без геопривязки
// @Tags Statistics
// @Produce json
// @Success 200 {object} domain.GeoreferenceStats
// @Failure 503 {object} utils.ErrorResponse
// @Router /stats/georeferences [get]
func (h *StatsHandler) GetGeoreferenceStats(c *fiber.Ctx) error {
	h.logger.Debug("Handling georeference statistics request")

	stats, err := h.statsUC.GetGeoreferenceStats(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, stats)
}
