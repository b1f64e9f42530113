package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/event"
	"content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/interface/api/rest/dto/event"
	"content-manager-api/internal/interface/api/rest/envelope"
	"content-manager-api/internal/interface/api/rest/middleware"
	"content-manager-api/internal/interface/api/rest/validator"
)

type EventController struct {
	service ports.EventService
	logger  *zap.Logger
}

func NewEventController(
	r *gin.Engine,
	service ports.EventService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	cache ports.ListCache,
) *EventController {
	ec := &EventController{
		service: service,
		logger:  logger,
	}

	r.GET(RouteEvents, middleware.ListCache(cache, "event"), ec.GetEventsHandler)
	r.GET(RouteEvent, ec.GetEventHandler)
	r.POST(RouteEvents, middleware.AuthMiddleware(jwtService), ec.CreateEventHandler)
	r.PUT(RouteEvent, middleware.AuthMiddleware(jwtService), ec.UpdateEventHandler)
	r.DELETE(RouteEvent, middleware.AuthMiddleware(jwtService), ec.DeleteEventHandler)

	return ec
}

func (ec *EventController) GetEventsHandler(c *gin.Context) {
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

	var f domain.Filter
	if s := c.Query("start_date"); s != "" {
		if f.Start, err = validator.ParseDate(s); err != nil {
			c.JSON(http.StatusBadRequest, envelope.Fail("invalid start_date: "+err.Error()))
			return
		}
	}
	if s := c.Query("end_date"); s != "" {
		if f.End, err = validator.ParseDate(s); err != nil {
			c.JSON(http.StatusBadRequest, envelope.Fail("invalid end_date: "+err.Error()))
			return
		}
	}

	es, total, err := ec.service.Find(c.Request.Context(), f, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get events"))
		ec.logger.Error("Find() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkList(event.ToResponseEvents(es), page, limit, total))
}

func (ec *EventController) GetEventHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("event_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("event_id must be a valid UUID"))
		return
	}

	e, err := ec.service.FindByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get event"))
		ec.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("event not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(event.ToResponseEvent(*e)))
}

func (ec *EventController) CreateEventHandler(c *gin.Context) {
	req := event.Request{
		Title:            c.PostForm("title"),
		ShortDescription: c.PostForm("short_description"),
		Link:             c.PostForm("link"),
	}
	if s := c.PostForm("event_date"); s != "" {
		d, err := validator.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, envelope.Fail("invalid event_date: "+err.Error()))
			return
		}
		req.EventDate = d
	}
	if errs := validator.ValidateEvent(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	e, err := ec.service.Create(c.Request.Context(), event.ToDomainEvent(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to create event"))
		ec.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Ok(event.ToResponseEvent(*e)))
}

func (ec *EventController) UpdateEventHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("event_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("event_id must be a valid UUID"))
		return
	}

	var eventDate *time.Time
	if s, present := c.GetPostForm("event_date"); present {
		d, err := validator.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, envelope.Fail("invalid event_date: "+err.Error()))
			return
		}
		eventDate = d
	}
	req := event.UpdateRequest{
		Title:            formString(c, "title"),
		ShortDescription: formString(c, "short_description"),
		Link:             formString(c, "link"),
		EventDate:        eventDate,
	}
	if errs := validator.ValidateEventUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	e, err := ec.service.Update(c.Request.Context(), uuid, event.ToDomainUpdate(req), formFiles(c))
	if err != nil {
		if status, msg := attachmentStatus(err); status != 0 {
			c.JSON(status, envelope.Fail(msg))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to update event"))
		ec.logger.Error("Update() error", zap.Error(err))
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("event not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(event.ToResponseEvent(*e)))
}

func (ec *EventController) DeleteEventHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("event_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("event_id must be a valid UUID"))
		return
	}

	deleted, err := ec.service.Delete(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to delete event"))
		ec.logger.Error("Delete() error", zap.Error(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, envelope.Fail("event not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.OkMessage("event deleted"))
}
