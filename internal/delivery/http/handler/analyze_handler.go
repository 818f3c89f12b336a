package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kotaicode/gpx-analyzer/internal/pkg/errors"
	"github.com/kotaicode/gpx-analyzer/internal/pkg/gpx"
	"github.com/kotaicode/gpx-analyzer/internal/pkg/utils"
	"github.com/kotaicode/gpx-analyzer/internal/pkg/validator"
	"github.com/kotaicode/gpx-analyzer/internal/usecase"
	"github.com/kotaicode/gpx-analyzer/internal/usecase/dto"
)

// AnalyzeHandler - обработчик анализа треков
type AnalyzeHandler struct {
	analysisUC  *usecase.AnalysisUseCase
	logger      *zap.Logger
	maxFileSize int64
}

// NewAnalyzeHandler - создание нового AnalyzeHandler
func NewAnalyzeHandler(analysisUC *usecase.AnalysisUseCase, logger *zap.Logger, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisUC:  analysisUC,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// AnalyzeGPX godoc
// @Summary Анализ маршрута из GPX-файла
// @Description Принимает GPX-файл, сопоставляет трек с покрытием дорог из OpenStreetMap и возвращает длины по типам покрытия (км), оценки пригодности для шоссейного и гравийного велосипеда и суммарный набор/потерю высоты (м).
// @Tags Analyze
// @Accept multipart/form-data
// @Produce json
// @Param gpx_file formData file true "GPX-файл трека (до 10 МБ)"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 413 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/analyze [post]
func (h *AnalyzeHandler) AnalyzeGPX(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("gpx_file")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidFile)
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".gpx") {
		return utils.SendError(c, errors.ErrInvalidFile)
	}
	if fileHeader.Size > h.maxFileSize {
		return utils.SendError(c, errors.ErrFileTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidFile)
	}
	defer file.Close()

	points, err := gpx.ParseTrackpoints(file)
	if err != nil {
		h.logger.Warn("GPX parsing failed", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidGPX)
	}
	if len(points) == 0 {
		return utils.SendError(c, errors.ErrEmptyTrack)
	}

	result, err := h.analysisUC.Analyze(c.Context(), points)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.FromAnalysisResult(result))
}

// AnalyzePoints godoc
// @Summary Анализ маршрута по готовым точкам трека
// @Description Вариант анализа для клиентов, которые парсят контейнер трека сами: принимает упорядоченный массив точек (lat, lon, опционально elevation) в JSON.
// @Tags Analyze
// @Accept json
// @Produce json
// @Param request body dto.AnalyzePointsRequest true "Точки трека"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/analyze/points [post]
func (h *AnalyzeHandler) AnalyzePoints(c *fiber.Ctx) error {
	var req dto.AnalyzePointsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		appErr := errors.New(
			errors.ErrInvalidRequest.Code,
			errors.ErrInvalidRequest.Message,
			errors.ErrInvalidRequest.StatusCode,
		)
		return utils.SendError(c, appErr.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.analysisUC.Analyze(c.Context(), req.ToDomain())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.FromAnalysisResult(result))
}
