package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/internal/application/usecase/analytics"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles analytics HTTP requests.
type AnalyticsController struct {
	getPeriodStatsUseCase *analytics.GetPeriodStatsUseCase
}

// NewAnalyticsController creates a new AnalyticsController.
func NewAnalyticsController(getPeriodStatsUseCase *analytics.GetPeriodStatsUseCase) *AnalyticsController {
	return &AnalyticsController{
		getPeriodStatsUseCase: getPeriodStatsUseCase,
	}
}

// Get handles GET /api/v1/analytics?period=weekly|monthly|yearly.
func (ac *AnalyticsController) Get(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	kind, err := analytics.ParsePeriodKind(c.Query("period"))
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		writeError(c, err)
		return
	}

	stats, err := ac.getPeriodStatsUseCase.Execute(c.Request.Context(), analytics.GetPeriodStatsInput{
		UserID: userID,
		Period: kind,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPeriodStatsResponse(kind, stats))
}
