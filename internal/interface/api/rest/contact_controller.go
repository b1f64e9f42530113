package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/interface/api/rest/dto/contact"
	"content-manager-api/internal/interface/api/rest/envelope"
	"content-manager-api/internal/interface/api/rest/middleware"
	"content-manager-api/internal/interface/api/rest/validator"
)

type ContactController struct {
	service ports.ContactService
	logger  *zap.Logger
}

func NewContactController(
	r *gin.Engine,
	service ports.ContactService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ContactController {
	cc := &ContactController{
		service: service,
		logger:  logger,
	}

	// submission is the public endpoint, review is for admins
	r.POST(RouteContact, cc.SubmitHandler)
	r.GET(RouteContact, middleware.AuthMiddleware(jwtService), cc.GetMessagesHandler)

	return cc
}

func (cc *ContactController) SubmitHandler(c *gin.Context) {
	var req contact.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail("invalid json"))
		return
	}
	if errs := validator.ValidateContact(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	m, err := cc.service.Submit(c.Request.Context(), contact.ToDomainMessage(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to submit message"))
		cc.logger.Error("Submit() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Ok(contact.ToResponseMessage(*m)))
}

func (cc *ContactController) GetMessagesHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(err.Error()))
		return
	}
	limit, err := validator.ValidateLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(err.Error()))
		return
	}

	ms, total, err := cc.service.Find(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get messages"))
		cc.logger.Error("Find() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkList(contact.ToResponseMessages(ms), page, limit, total))
}
