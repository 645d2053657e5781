package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calories/internal/core/services"
)

type EntryHandler struct {
	svc *services.EntryService
}

func NewEntryHandler(svc *services.EntryService) *EntryHandler {
	return &EntryHandler{
		svc: svc,
	}
}

type createEntryRequest struct {
	Date        string               `json:"date"`
	Type        string               `json:"type"`
	Text        string               `json:"text"`
	CaloriesIn  domain.LenientNumber `json:"caloriesIn" swaggertype:"number"`
	CaloriesOut domain.LenientNumber `json:"caloriesOut" swaggertype:"number"`
	Protein     domain.LenientNumber `json:"protein" swaggertype:"number"`
	Carbs       domain.LenientNumber `json:"carbs" swaggertype:"number"`
	Fat         domain.LenientNumber `json:"fat" swaggertype:"number"`
	VitaminText string               `json:"vitaminText"`
	Explanation string               `json:"explanation"`
}

func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/entries")
	{
		entries.POST("", h.Create)
		entries.GET("", h.List)
		entries.GET("/recent", h.Recent)
	}
}

// Create godoc
// @Summary      Record a food or activity entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        entry  body      createEntryRequest  true  "Entry"
// @Success      201    {object}  domain.LogEntry
// @Failure      400    {object}  errorResponse
// @Router       /entries [post]
func (h *EntryHandler) Create(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	entry, err := h.svc.Create(c.Request.Context(), domain.NewEntryParams{
		Date:        req.Date,
		Kind:        req.Type,
		Description: req.Text,
		CaloriesIn:  req.CaloriesIn.Float(),
		CaloriesOut: req.CaloriesOut.Float(),
		Protein:     req.Protein.Float(),
		Carbs:       req.Carbs.Float(),
		Fat:         req.Fat.Float(),
		VitaminNote: req.VitaminText,
		Explanation: req.Explanation,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List godoc
// @Summary      List every entry
// @Tags         entries
// @Produce      json
// @Success      200  {array}  domain.LogEntry
// @Router       /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	entries, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	if entries == nil {
		entries = []domain.LogEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// Recent godoc
// @Summary      Most recent entries, newest first
// @Tags         entries
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of entries"  default(10)
// @Success      200    {array}   domain.LogEntry
// @Failure      400    {object}  errorResponse
// @Router       /entries/recent [get]
func (h *EntryHandler) Recent(c *gin.Context) {
	limit, err := recentLimit(c)
	if err != nil {
		handleError(c, err)
		return
	}

	entries, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
