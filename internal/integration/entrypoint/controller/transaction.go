package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/usecase/transaction"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction HTTP requests.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
}

// NewTransactionController creates a new TransactionController.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /api/v1/transactions.
func (tc *TransactionController) Create(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var request dto.TransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	draft, err := request.ToDraft()
	if err != nil {
		writeError(c, err)
		return
	}

	output, err := tc.createUseCase.Execute(c.Request.Context(), transaction.CreateTransactionInput{
		UserID: userID,
		Draft:  draft,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(output))
}

// Update handles PUT /api/v1/transactions/:id.
func (tc *TransactionController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid transaction id"})
		return
	}

	var request dto.TransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	draft, err := request.ToDraft()
	if err != nil {
		writeError(c, err)
		return
	}

	output, err := tc.updateUseCase.Execute(c.Request.Context(), transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Draft:         draft,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(output))
}

// Delete handles DELETE /api/v1/transactions/:id.
func (tc *TransactionController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid transaction id"})
		return
	}

	if err := tc.deleteUseCase.Execute(c.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "transaction deleted"})
}

// List handles GET /api/v1/transactions.
func (tc *TransactionController) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	output, err := tc.listUseCase.Execute(c.Request.Context(), transaction.ListTransactionsInput{
		UserID: userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": dto.NewTransactionListResponse(output.Transactions)})
}
