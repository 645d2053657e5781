package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calories/internal/core/services"
)

type PresetHandler struct {
	svc *services.PresetService
}

func NewPresetHandler(svc *services.PresetService) *PresetHandler {
	return &PresetHandler{svc: svc}
}

type presetRequest struct {
	Name           string               `json:"name"`
	DefaultPortion string               `json:"defaultPortion"`
	CaloriesIn     domain.LenientNumber `json:"caloriesIn" swaggertype:"number"`
	Protein        domain.LenientNumber `json:"protein" swaggertype:"number"`
	Carbs          domain.LenientNumber `json:"carbs" swaggertype:"number"`
	Fat            domain.LenientNumber `json:"fat" swaggertype:"number"`
	VitaminText    string               `json:"vitaminText"`
}

func (r presetRequest) params() domain.PresetParams {
	return domain.PresetParams{
		Name:           r.Name,
		DefaultPortion: r.DefaultPortion,
		CaloriesIn:     r.CaloriesIn.Float(),
		Protein:        r.Protein.Float(),
		Carbs:          r.Carbs.Float(),
		Fat:            r.Fat.Float(),
		VitaminNote:    r.VitaminText,
	}
}

type logPresetRequest struct {
	Date     string                `json:"date"`
	Portions *domain.LenientNumber `json:"portions" swaggertype:"number"`
}

func (h *PresetHandler) RegisterRoutes(router *gin.RouterGroup) {
	presets := router.Group("/presets")
	{
		presets.POST("", h.Create)
		presets.GET("", h.List)
		presets.PUT("/:id", h.Update)
		presets.DELETE("/:id", h.Delete)
		presets.POST("/:id/log", h.Log)
	}
}

// Create godoc
// @Summary      Create a food preset
// @Tags         presets
// @Accept       json
// @Produce      json
// @Param        preset  body      presetRequest  true  "Preset"
// @Success      201     {object}  domain.FoodPreset
// @Failure      400     {object}  errorResponse
// @Router       /presets [post]
func (h *PresetHandler) Create(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	preset, err := h.svc.Create(c.Request.Context(), req.params())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, preset)
}

// List godoc
// @Summary      List food presets by name
// @Tags         presets
// @Produce      json
// @Success      200  {array}  domain.FoodPreset
// @Router       /presets [get]
func (h *PresetHandler) List(c *gin.Context) {
	presets, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	if presets == nil {
		presets = []domain.FoodPreset{}
	}

	c.JSON(http.StatusOK, presets)
}

// Update godoc
// @Summary      Replace a food preset
// @Tags         presets
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Preset ID"
// @Param        preset  body      presetRequest  true  "Preset"
// @Success      200     {object}  domain.FoodPreset
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /presets/{id} [put]
func (h *PresetHandler) Update(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	preset, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.params())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, preset)
}

// Delete godoc
// @Summary      Delete a food preset
// @Tags         presets
// @Param        id  path  string  true  "Preset ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /presets/{id} [delete]
func (h *PresetHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Log godoc
// @Summary      Log a food entry from a preset
// @Tags         presets
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Preset ID"
// @Param        request  body      logPresetRequest  true  "Day and portions (default 1)"
// @Success      201      {object}  domain.LogEntry
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /presets/{id}/log [post]
func (h *PresetHandler) Log(c *gin.Context) {
	var req logPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	portions := 1.0
	if req.Portions != nil {
		portions = req.Portions.Value
	}

	entry, err := h.svc.Log(c.Request.Context(), c.Param("id"), req.Date, portions)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}
