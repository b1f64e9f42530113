package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/interface/api/rest/dto/opportunity"
	"content-manager-api/internal/interface/api/rest/envelope"
	"content-manager-api/internal/interface/api/rest/middleware"
	"content-manager-api/internal/interface/api/rest/validator"
)

type OpportunityController struct {
	service ports.OpportunityService
	logger  *zap.Logger
}

func NewOpportunityController(
	r *gin.Engine,
	service ports.OpportunityService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	cache ports.ListCache,
) *OpportunityController {
	oc := &OpportunityController{
		service: service,
		logger:  logger,
	}

	r.GET(RouteOpportunities, middleware.ListCache(cache, "opportunity"), oc.GetOpportunitiesHandler)
	r.GET(RouteOpportunity, oc.GetOpportunityHandler)
	r.POST(RouteOpportunities, middleware.AuthMiddleware(jwtService), oc.CreateOpportunityHandler)
	r.PUT(RouteOpportunity, middleware.AuthMiddleware(jwtService), oc.UpdateOpportunityHandler)
	r.DELETE(RouteOpportunity, middleware.AuthMiddleware(jwtService), oc.DeleteOpportunityHandler)

	return oc
}

func (oc *OpportunityController) GetOpportunitiesHandler(c *gin.Context) {
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

	os, total, err := oc.service.Find(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get opportunities"))
		oc.logger.Error("Find() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkList(opportunity.ToResponseOpportunities(os), page, limit, total))
}

func (oc *OpportunityController) GetOpportunityHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("opportunity_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("opportunity_id must be a valid UUID"))
		return
	}

	o, err := oc.service.FindByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get opportunity"))
		oc.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("opportunity not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(opportunity.ToResponseOpportunity(*o)))
}

func (oc *OpportunityController) CreateOpportunityHandler(c *gin.Context) {
	req := opportunity.Request{
		Title:            c.PostForm("title"),
		ShortDescription: c.PostForm("short_description"),
		Link:             c.PostForm("link"),
	}
	if errs := validator.ValidateOpportunity(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	o, err := oc.service.Create(c.Request.Context(), opportunity.ToDomainOpportunity(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to create opportunity"))
		oc.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Ok(opportunity.ToResponseOpportunity(*o)))
}

func (oc *OpportunityController) UpdateOpportunityHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("opportunity_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("opportunity_id must be a valid UUID"))
		return
	}

	req := opportunity.UpdateRequest{
		Title:            formString(c, "title"),
		ShortDescription: formString(c, "short_description"),
		Link:             formString(c, "link"),
	}
	if errs := validator.ValidateOpportunityUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	o, err := oc.service.Update(c.Request.Context(), uuid, opportunity.ToDomainUpdate(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to update opportunity"))
		oc.logger.Error("Update() error", zap.Error(err))
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("opportunity not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(opportunity.ToResponseOpportunity(*o)))
}

func (oc *OpportunityController) DeleteOpportunityHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("opportunity_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("opportunity_id must be a valid UUID"))
		return
	}

	deleted, err := oc.service.Delete(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to delete opportunity"))
		oc.logger.Error("Delete() error", zap.Error(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, envelope.Fail("opportunity not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.OkMessage("opportunity deleted"))
}
