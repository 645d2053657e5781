package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calories/internal/core/aggregate"
	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPresetNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})

	case errors.Is(err, domain.ErrDuplicate):
		c.JSON(http.StatusConflict, errorResponse{Error: "resource already exists"})

	case errors.Is(err, domain.ErrDashboardLoad):
		slog.ErrorContext(c.Request.Context(), "dashboard load failed",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load dashboard"})

	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func badRequestBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
}

// recentLimit reads the optional limit query parameter.
func recentLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return aggregate.DefaultRecentLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, domain.ErrInvalidRecentLimit
	}
	return limit, nil
}
