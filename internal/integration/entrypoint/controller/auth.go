package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/internal/application/usecase/auth"
	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication HTTP requests.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
	refreshUseCase  *auth.RefreshTokenUseCase
	logoutUseCase   *auth.LogoutUserUseCase
}

// NewAuthController creates a new AuthController.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	refreshUseCase *auth.RefreshTokenUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		refreshUseCase:  refreshUseCase,
		logoutUseCase:   logoutUseCase,
	}
}

// Register handles POST /api/v1/auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email, name and password are required"})
		return
	}

	output, err := ac.registerUseCase.Execute(c.Request.Context(), auth.RegisterUserInput{
		Email:    request.Email,
		Name:     request.Name,
		Password: request.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAuthResponse(output))
}

// Login handles POST /api/v1/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email and password are required"})
		return
	}

	output, err := ac.loginUseCase.Execute(c.Request.Context(), auth.LoginUserInput{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(output))
}

// Refresh handles POST /api/v1/auth/refresh.
func (ac *AuthController) Refresh(c *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "refreshToken is required"})
		return
	}

	output, err := ac.refreshUseCase.Execute(c.Request.Context(), auth.RefreshTokenInput{
		RefreshToken: request.RefreshToken,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout handles POST /api/v1/auth/logout.
func (ac *AuthController) Logout(c *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "refreshToken is required"})
		return
	}

	if err := ac.logoutUseCase.Execute(c.Request.Context(), auth.LogoutUserInput{
		RefreshToken: request.RefreshToken,
	}); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out"})
}
