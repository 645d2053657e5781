package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calories/internal/core/services"
)

type DashboardHandler struct {
	svc *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.Get)
}

// Get godoc
// @Summary      Daily totals, weight trend and today's figures
// @Tags         dashboard
// @Produce      json
// @Param        range  query     string  false  "all, 7, 30 or today"  default(all)
// @Param        date   query     string  false  "Reference day (YYYY-MM-DD), defaults to today"
// @Param        limit  query     int     false  "Number of recent entries"  default(10)
// @Success      200    {object}  domain.Dashboard
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	rng, err := domain.ParseRange(c.Query("range"))
	if err != nil {
		handleError(c, err)
		return
	}

	limit, err := recentLimit(c)
	if err != nil {
		handleError(c, err)
		return
	}

	dashboard, err := h.svc.Load(c.Request.Context(), services.DashboardQuery{
		Range:       rng,
		Date:        c.Query("date"),
		RecentLimit: limit,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
