package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calories/internal/core/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Absent or null fields are left unchanged.
type updateProfileRequest struct {
	CalorieBudget *domain.LenientNumber `json:"calorieBudget" swaggertype:"number"`
	ProteinTarget *domain.LenientNumber `json:"proteinTarget" swaggertype:"number"`
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.Get)
	router.PUT("/profile", h.Update)
}

// Get godoc
// @Summary      Current goals
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.svc.Get(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update godoc
// @Summary      Update goals
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      updateProfileRequest  true  "Fields to change"
// @Success      200      {object}  domain.Profile
// @Failure      400      {object}  errorResponse
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	profile, err := h.svc.Update(c.Request.Context(), domain.ProfilePatch{
		CalorieBudget: optionalAmount(req.CalorieBudget),
		ProteinTarget: optionalAmount(req.ProteinTarget),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func optionalAmount(n *domain.LenientNumber) *float64 {
	if n == nil {
		return nil
	}
	v := n.Float()
	return &v
}
