package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/announcement"
	"content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/interface/api/rest/dto/announcement"
	"content-manager-api/internal/interface/api/rest/envelope"
	"content-manager-api/internal/interface/api/rest/middleware"
	"content-manager-api/internal/interface/api/rest/validator"
)

type AnnouncementController struct {
	service ports.AnnouncementService
	logger  *zap.Logger
}

func NewAnnouncementController(
	r *gin.Engine,
	service ports.AnnouncementService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	cache ports.ListCache,
) *AnnouncementController {
	ac := &AnnouncementController{
		service: service,
		logger:  logger,
	}

	r.GET(RouteAnnouncements, middleware.ListCache(cache, "announcement"), ac.GetAnnouncementsHandler)
	r.GET(RouteAnnouncement, ac.GetAnnouncementHandler)
	r.POST(RouteAnnouncements, middleware.AuthMiddleware(jwtService), ac.CreateAnnouncementHandler)
	r.PUT(RouteAnnouncement, middleware.AuthMiddleware(jwtService), ac.UpdateAnnouncementHandler)
	r.DELETE(RouteAnnouncement, middleware.AuthMiddleware(jwtService), ac.DeleteAnnouncementHandler)

	return ac
}

func (ac *AnnouncementController) GetAnnouncementsHandler(c *gin.Context) {
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

	as, total, err := ac.service.Find(c.Request.Context(), f, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get announcements"))
		ac.logger.Error("Find() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkList(announcement.ToResponseAnnouncements(as), page, limit, total))
}

func (ac *AnnouncementController) GetAnnouncementHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("announcement_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("announcement_id must be a valid UUID"))
		return
	}

	a, err := ac.service.FindByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get announcement"))
		ac.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("announcement not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(announcement.ToResponseAnnouncement(*a)))
}

func (ac *AnnouncementController) CreateAnnouncementHandler(c *gin.Context) {
	req := announcement.Request{
		Title:            c.PostForm("title"),
		ShortDescription: c.PostForm("short_description"),
		Link:             c.PostForm("link"),
		Category:         c.PostForm("category"),
	}
	if req.Category == "" {
		req.Category = domain.CategoryAnnouncement
	}
	if errs := validator.ValidateAnnouncement(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	a, err := ac.service.Create(c.Request.Context(), announcement.ToDomainAnnouncement(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to create announcement"))
		ac.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Ok(announcement.ToResponseAnnouncement(*a)))
}

func (ac *AnnouncementController) UpdateAnnouncementHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("announcement_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("announcement_id must be a valid UUID"))
		return
	}

	req := announcement.UpdateRequest{
		Title:            formString(c, "title"),
		ShortDescription: formString(c, "short_description"),
		Link:             formString(c, "link"),
		Category:         formString(c, "category"),
	}
	if errs := validator.ValidateAnnouncementUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	a, err := ac.service.Update(c.Request.Context(), uuid, announcement.ToDomainUpdate(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to update announcement"))
		ac.logger.Error("Update() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("announcement not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(announcement.ToResponseAnnouncement(*a)))
}

func (ac *AnnouncementController) DeleteAnnouncementHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("announcement_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("announcement_id must be a valid UUID"))
		return
	}

	deleted, err := ac.service.Delete(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to delete announcement"))
		ac.logger.Error("Delete() error", zap.Error(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, envelope.Fail("announcement not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.OkMessage("announcement deleted"))
}
