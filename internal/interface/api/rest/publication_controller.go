package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/publication"
	"content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/interface/api/rest/dto/publication"
	"content-manager-api/internal/interface/api/rest/envelope"
	"content-manager-api/internal/interface/api/rest/middleware"
	"content-manager-api/internal/interface/api/rest/validator"
)

type PublicationController struct {
	service ports.PublicationService
	logger  *zap.Logger
}

func NewPublicationController(
	r *gin.Engine,
	service ports.PublicationService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	cache ports.ListCache,
) *PublicationController {
	pc := &PublicationController{
		service: service,
		logger:  logger,
	}

	r.GET(RoutePublications, middleware.ListCache(cache, "publication"), pc.GetPublicationsHandler)
	r.GET(RoutePublication, pc.GetPublicationHandler)
	r.POST(RoutePublications, middleware.AuthMiddleware(jwtService), pc.CreatePublicationHandler)
	r.PUT(RoutePublication, middleware.AuthMiddleware(jwtService), pc.UpdatePublicationHandler)
	r.DELETE(RoutePublication, middleware.AuthMiddleware(jwtService), pc.DeletePublicationHandler)

	return pc
}

func (pc *PublicationController) GetPublicationsHandler(c *gin.Context) {
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
	f := domain.Filter{Category: c.Query("category")}

	ps, total, err := pc.service.Find(c.Request.Context(), f, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get publications"))
		pc.logger.Error("Find() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkList(publication.ToResponsePublications(ps), page, limit, total))
}

func (pc *PublicationController) GetPublicationHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("publication_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("publication_id must be a valid UUID"))
		return
	}

	p, err := pc.service.FindByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get publication"))
		pc.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("publication not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(publication.ToResponsePublication(*p)))
}

func (pc *PublicationController) CreatePublicationHandler(c *gin.Context) {
	isOngoing, _ := strconv.ParseBool(c.PostForm("is_ongoing"))
	req := publication.Request{
		Title:            c.PostForm("title"),
		ShortDescription: c.PostForm("short_description"),
		Category:         c.PostForm("category"),
		IsOngoing:        isOngoing,
		Disclaimer:       c.PostForm("disclaimer"),
	}
	if errs := validator.ValidatePublication(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	p, err := pc.service.Create(c.Request.Context(), publication.ToDomainPublication(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to create publication"))
		pc.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Ok(publication.ToResponsePublication(*p)))
}

func (pc *PublicationController) UpdatePublicationHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("publication_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("publication_id must be a valid UUID"))
		return
	}

	var isOngoing *bool
	if v, present := c.GetPostForm("is_ongoing"); present {
		b, _ := strconv.ParseBool(v)
		isOngoing = &b
	}
	req := publication.UpdateRequest{
		Title:            formString(c, "title"),
		ShortDescription: formString(c, "short_description"),
		Category:         formString(c, "category"),
		IsOngoing:        isOngoing,
		Disclaimer:       formString(c, "disclaimer"),
	}
	if errs := validator.ValidatePublicationUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	p, err := pc.service.Update(c.Request.Context(), uuid, publication.ToDomainUpdate(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to update publication"))
		pc.logger.Error("Update() error", zap.Error(err))
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("publication not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(publication.ToResponsePublication(*p)))
}

func (pc *PublicationController) DeletePublicationHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("publication_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("publication_id must be a valid UUID"))
		return
	}

	deleted, err := pc.service.Delete(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to delete publication"))
		pc.logger.Error("Delete() error", zap.Error(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, envelope.Fail("publication not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.OkMessage("publication deleted"))
}
