package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AZS-FEFU/camera/internal/model"
	"github.com/AZS-FEFU/camera/internal/service"
)

type Handler struct {
	validationService *service.ValidationService
	log               zerolog.Logger
}

func NewHandler(validationService *service.ValidationService, log zerolog.Logger) *Handler {
	return &Handler{
		validationService: validationService,
		log:               log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	// Проверка номерных знаков
	plates := r.Group("/api/v1/license-plates")
	{
		plates.POST("/validate", h.validatePlate)
		plates.GET("/stats/validation", h.getValidationStats)
		plates.GET("", h.validatePlateList)
		plates.GET("/:plate_number", h.getPlateInfo)
	}
}

func (h *Handler) validatePlate(c *gin.Context) {
	var req model.PlateValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse(err.Error()))
		return
	}

	if strings.TrimSpace(req.PlateNumber) == "" {
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse("plate number must not be empty"))
		return
	}

	resp, err := h.validationService.ValidatePlate(req.PlateNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getPlateInfo(c *gin.Context) {
	plateNumber := strings.TrimSpace(c.Param("plate_number"))
	if plateNumber == "" {
		c.JSON(http.StatusBadRequest, errorResponse("plate number must not be empty"))
		return
	}

	resp, err := h.validationService.ValidatePlate(plateNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) validatePlateList(c *gin.Context) {
	raw, ok := c.GetQuery("plates")
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse("plates query parameter is required"))
		return
	}

	// Номера передаются через запятую, пустые элементы отбрасываются
	var plates []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			plates = append(plates, p)
		}
	}

	results, err := h.validationService.ValidateBatch(plates)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) getValidationStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.validationService.Stats())
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyPlate),
		errors.Is(err, service.ErrEmptyBatch),
		errors.Is(err, service.ErrBatchTooLarge):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

func validationErrorResponse(details string) gin.H {
	return gin.H{
		"error":   "validation error",
		"details": details,
	}
}
