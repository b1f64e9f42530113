package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/application/services"
	"content-manager-api/internal/domain/user"
	"content-manager-api/internal/interface/api/rest/dto/auth"
	"content-manager-api/internal/interface/api/rest/envelope"
	"content-manager-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.AuthService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteForgotPassword, ac.ForgotPasswordHandler)
	r.POST(RouteResetPassword, ac.ResetPasswordHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail("invalid json"))
		return
	}
	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	token, err := ac.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, envelope.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to register"))
		ac.logger.Error("Register() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Ok(auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail("invalid json"))
		return
	}
	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, envelope.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to login"))
		ac.logger.Error("Login() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
}

func (ac *AuthController) ForgotPasswordHandler(c *gin.Context) {
	var req auth.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail("invalid json"))
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, envelope.Fail("email is required"))
		return
	}

	if err := ac.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to process request"))
		ac.logger.Error("ForgotPassword() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkMessage("if the account exists, a reset link has been sent"))
}

func (ac *AuthController) ResetPasswordHandler(c *gin.Context) {
	token := c.Param("token")

	var req auth.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail("invalid json"))
		return
	}
	if errMsg := validator.PasswordError(req.Password); errMsg != "" {
		c.JSON(http.StatusBadRequest, envelope.Fail(errMsg))
		return
	}

	if err := ac.authService.ResetPassword(c.Request.Context(), token, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidResetToken) {
			c.JSON(http.StatusBadRequest, envelope.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to reset password"))
		ac.logger.Error("ResetPassword() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkMessage("password has been reset"))
}
