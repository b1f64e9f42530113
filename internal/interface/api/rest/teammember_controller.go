package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/teammember"
	"content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/interface/api/rest/dto/teammember"
	"content-manager-api/internal/interface/api/rest/envelope"
	"content-manager-api/internal/interface/api/rest/middleware"
	"content-manager-api/internal/interface/api/rest/validator"
)

type TeamMemberController struct {
	service ports.TeamMemberService
	logger  *zap.Logger
}

func NewTeamMemberController(
	r *gin.Engine,
	service ports.TeamMemberService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	cache ports.ListCache,
) *TeamMemberController {
	tc := &TeamMemberController{
		service: service,
		logger:  logger,
	}

	r.GET(RouteTeam, middleware.ListCache(cache, "teammember"), tc.GetTeamMembersHandler)
	r.GET(RouteTeamMember, tc.GetTeamMemberHandler)
	r.POST(RouteTeam, middleware.AuthMiddleware(jwtService), tc.CreateTeamMemberHandler)
	r.PUT(RouteTeamMember, middleware.AuthMiddleware(jwtService), tc.UpdateTeamMemberHandler)
	r.DELETE(RouteTeamMember, middleware.AuthMiddleware(jwtService), tc.DeleteTeamMemberHandler)

	return tc
}

func (tc *TeamMemberController) GetTeamMembersHandler(c *gin.Context) {
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

	ms, total, err := tc.service.Find(c.Request.Context(), f, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get team members"))
		tc.logger.Error("Find() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkList(teammember.ToResponseTeamMembers(ms), page, limit, total))
}

func (tc *TeamMemberController) GetTeamMemberHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("member_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("member_id must be a valid UUID"))
		return
	}

	m, err := tc.service.FindByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get team member"))
		tc.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("team member not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(teammember.ToResponseTeamMember(*m)))
}

func (tc *TeamMemberController) CreateTeamMemberHandler(c *gin.Context) {
	req := teammember.Request{
		Name:             c.PostForm("name"),
		Role:             c.PostForm("role"),
		ShortDescription: c.PostForm("short_description"),
		Category:         c.PostForm("category"),
		Year:             c.PostForm("year"),
	}
	if errs := validator.ValidateTeamMember(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	m, err := tc.service.Create(c.Request.Context(), teammember.ToDomainTeamMember(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to create team member"))
		tc.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Ok(teammember.ToResponseTeamMember(*m)))
}

func (tc *TeamMemberController) UpdateTeamMemberHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("member_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("member_id must be a valid UUID"))
		return
	}

	req := teammember.UpdateRequest{
		Name:             formString(c, "name"),
		Role:             formString(c, "role"),
		ShortDescription: formString(c, "short_description"),
		Category:         formString(c, "category"),
		Year:             formString(c, "year"),
	}
	if errs := validator.ValidateTeamMemberUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	m, err := tc.service.Update(c.Request.Context(), uuid, teammember.ToDomainUpdate(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to update team member"))
		tc.logger.Error("Update() error", zap.Error(err))
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("team member not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(teammember.ToResponseTeamMember(*m)))
}

func (tc *TeamMemberController) DeleteTeamMemberHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("member_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("member_id must be a valid UUID"))
		return
	}

	deleted, err := tc.service.Delete(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to delete team member"))
		tc.logger.Error("Delete() error", zap.Error(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, envelope.Fail("team member not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.OkMessage("team member deleted"))
}
