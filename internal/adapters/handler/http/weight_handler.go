package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calories/internal/core/services"
)

type WeightHandler struct {
	svc *services.WeightService
}

func NewWeightHandler(svc *services.WeightService) *WeightHandler {
	return &WeightHandler{svc: svc}
}

type recordWeightRequest struct {
	Date   string               `json:"date"`
	Weight domain.LenientNumber `json:"weight" swaggertype:"number"`
}

func (h *WeightHandler) RegisterRoutes(router *gin.RouterGroup) {
	weights := router.Group("/weights")
	{
		weights.POST("", h.Record)
		weights.GET("", h.List)
	}
}

// Record godoc
// @Summary      Record the weight for a day, replacing any earlier value
// @Tags         weights
// @Accept       json
// @Produce      json
// @Param        sample  body      recordWeightRequest  true  "Weight sample"
// @Success      201     {object}  domain.WeightSample
// @Failure      400     {object}  errorResponse
// @Router       /weights [post]
func (h *WeightHandler) Record(c *gin.Context) {
	var req recordWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	if !req.Weight.Valid {
		handleError(c, domain.ErrInvalidWeight)
		return
	}

	sample, err := h.svc.Record(c.Request.Context(), req.Date, req.Weight.Value)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sample)
}

// List godoc
// @Summary      Weight series, one sample per day, oldest first
// @Tags         weights
// @Produce      json
// @Success      200  {array}  domain.WeightSample
// @Router       /weights [get]
func (h *WeightHandler) List(c *gin.Context) {
	series, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}
