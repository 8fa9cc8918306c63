package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

// writeError maps a domain error to its HTTP status and uniform body. Errors
// without a domain code are treated as internal and logged; their details
// never reach the client.
func writeError(c *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		c.JSON(transactionStatus(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		c.JSON(budgetStatus(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		c.JSON(authStatus(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	slog.Error("unhandled error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "internal server error",
	})
}

func transactionStatus(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction, domainerror.ErrCodeEditWindowExpired:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

func budgetStatus(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedBudget:
		return http.StatusForbidden
	case domainerror.ErrCodeDuplicateBudget:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func authStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCredentials, domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken, domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}
