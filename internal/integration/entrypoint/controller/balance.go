package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/internal/application/usecase/balance"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
)

// BalanceController handles balance HTTP requests.
type BalanceController struct {
	getBalancesUseCase *balance.GetBalancesUseCase
}

// NewBalanceController creates a new BalanceController.
func NewBalanceController(getBalancesUseCase *balance.GetBalancesUseCase) *BalanceController {
	return &BalanceController{
		getBalancesUseCase: getBalancesUseCase,
	}
}

// Get handles GET /api/v1/balances.
func (bc *BalanceController) Get(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	output, err := bc.getBalancesUseCase.Execute(c.Request.Context(), balance.GetBalancesInput{
		UserID: userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalancesResponse(output))
}
