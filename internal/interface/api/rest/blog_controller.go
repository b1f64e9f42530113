package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/interface/api/rest/dto/blog"
	"content-manager-api/internal/interface/api/rest/envelope"
	"content-manager-api/internal/interface/api/rest/middleware"
	"content-manager-api/internal/interface/api/rest/validator"
)

type BlogController struct {
	service ports.BlogService
	logger  *zap.Logger
}

func NewBlogController(
	r *gin.Engine,
	service ports.BlogService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	cache ports.ListCache,
) *BlogController {
	bc := &BlogController{
		service: service,
		logger:  logger,
	}

	r.GET(RouteBlogs, middleware.ListCache(cache, "blog"), bc.GetBlogsHandler)
	r.GET(RouteBlog, bc.GetBlogHandler)
	r.POST(RouteBlogs, middleware.AuthMiddleware(jwtService), bc.CreateBlogHandler)
	r.PUT(RouteBlog, middleware.AuthMiddleware(jwtService), bc.UpdateBlogHandler)
	r.DELETE(RouteBlog, middleware.AuthMiddleware(jwtService), bc.DeleteBlogHandler)

	return bc
}

func (bc *BlogController) GetBlogsHandler(c *gin.Context) {
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

	bs, total, err := bc.service.Find(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get blogs"))
		bc.logger.Error("Find() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkList(blog.ToResponseBlogs(bs), page, limit, total))
}

func (bc *BlogController) GetBlogHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("blog_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("blog_id must be a valid UUID"))
		return
	}

	b, err := bc.service.FindByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get blog"))
		bc.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("blog not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(blog.ToResponseBlog(*b)))
}

func (bc *BlogController) CreateBlogHandler(c *gin.Context) {
	req := blog.Request{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	}
	if errs := validator.ValidateBlog(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	b, err := bc.service.Create(c.Request.Context(), blog.ToDomainBlog(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to create blog"))
		bc.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Ok(blog.ToResponseBlog(*b)))
}

func (bc *BlogController) UpdateBlogHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("blog_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("blog_id must be a valid UUID"))
		return
	}

	req := blog.UpdateRequest{
		Title:   formString(c, "title"),
		Content: formString(c, "content"),
	}
	if errs := validator.ValidateBlogUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	b, err := bc.service.Update(c.Request.Context(), uuid, blog.ToDomainUpdate(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to update blog"))
		bc.logger.Error("Update() error", zap.Error(err))
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("blog not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(blog.ToResponseBlog(*b)))
}

func (bc *BlogController) DeleteBlogHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("blog_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("blog_id must be a valid UUID"))
		return
	}

	deleted, err := bc.service.Delete(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to delete blog"))
		bc.logger.Error("Delete() error", zap.Error(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, envelope.Fail("blog not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.OkMessage("blog deleted"))
}
