package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/internal/application/usecase/settings"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles user settings HTTP requests.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new SettingsController.
func NewSettingsController(getUseCase *settings.GetSettingsUseCase, updateUseCase *settings.UpdateSettingsUseCase) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /api/v1/settings.
func (sc *SettingsController) Get(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	output, err := sc.getUseCase.Execute(c.Request.Context(), settings.GetSettingsInput{
		UserID: userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettingsResponse(output))
}

// Update handles PUT /api/v1/settings.
func (sc *SettingsController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var request dto.SettingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	output, err := sc.updateUseCase.Execute(c.Request.Context(), settings.UpdateSettingsInput{
		UserID:   userID,
		Settings: request.ToEntity(),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettingsResponse(output))
}
