package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/usecase/budget"
	"github.com/money-manager/backend/internal/domain/entity"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget HTTP requests.
type BudgetController struct {
	createUseCase *budget.CreateBudgetUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
}

// NewBudgetController creates a new BudgetController.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /api/v1/budgets.
func (bc *BudgetController) Create(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var request dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := bc.createUseCase.Execute(c.Request.Context(), budget.CreateBudgetInput{
		UserID:       userID,
		Month:        request.Month,
		Category:     entity.Category(request.Category),
		Division:     entity.Division(request.Division),
		BudgetAmount: request.BudgetAmount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBudgetResponse(created))
}

// Update handles PUT /api/v1/budgets/:id.
func (bc *BudgetController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid budget id"})
		return
	}

	var request dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	updated, err := bc.updateUseCase.Execute(c.Request.Context(), budget.UpdateBudgetInput{
		BudgetID:     budgetID,
		UserID:       userID,
		BudgetAmount: request.BudgetAmount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponse(updated))
}

// Delete handles DELETE /api/v1/budgets/:id.
func (bc *BudgetController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid budget id"})
		return
	}

	if err := bc.deleteUseCase.Execute(c.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	}); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "budget deleted"})
}

// List handles GET /api/v1/budgets?month=YYYY-MM.
func (bc *BudgetController) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "month query parameter is required"})
		return
	}

	output, err := bc.listUseCase.Execute(c.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	budgets := make([]dto.BudgetResponse, 0, len(output.Budgets))
	for _, budgetWithSpending := range output.Budgets {
		budgets = append(budgets, dto.NewBudgetWithSpendingResponse(budgetWithSpending))
	}
	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}
