package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/interface/api/rest/dto/donation"
	"content-manager-api/internal/interface/api/rest/envelope"
	"content-manager-api/internal/interface/api/rest/middleware"
	"content-manager-api/internal/interface/api/rest/validator"
)

type DonationController struct {
	service ports.DonationService
	logger  *zap.Logger
}

func NewDonationController(
	r *gin.Engine,
	service ports.DonationService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *DonationController {
	dc := &DonationController{
		service: service,
		logger:  logger,
	}

	// donors submit without an account
	r.POST(RouteDonations, dc.CreateDonationHandler)
	r.GET(RouteDonations, middleware.AuthMiddleware(jwtService), dc.GetDonationsHandler)
	r.GET(RouteDonation, middleware.AuthMiddleware(jwtService), dc.GetDonationHandler)
	r.PUT(RouteDonation, middleware.AuthMiddleware(jwtService), dc.UpdateDonationHandler)
	r.DELETE(RouteDonation, middleware.AuthMiddleware(jwtService), dc.DeleteDonationHandler)

	return dc
}

func (dc *DonationController) GetDonationsHandler(c *gin.Context) {
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

	ds, total, err := dc.service.Find(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get donations"))
		dc.logger.Error("Find() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.OkList(donation.ToResponseDonations(ds), page, limit, total))
}

func (dc *DonationController) GetDonationHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("donation_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("donation_id must be a valid UUID"))
		return
	}

	d, err := dc.service.FindByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to get donation"))
		dc.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if d == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("donation not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(donation.ToResponseDonation(*d)))
}

func (dc *DonationController) CreateDonationHandler(c *gin.Context) {
	var req donation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail("invalid json"))
		return
	}
	if errs := validator.ValidateDonation(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(errs))
		return
	}

	d, err := dc.service.Create(c.Request.Context(), donation.ToDomainDonation(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to create donation"))
		dc.logger.Error("Create() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Ok(donation.ToResponseDonation(*d)))
}

func (dc *DonationController) UpdateDonationHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("donation_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("donation_id must be a valid UUID"))
		return
	}

	var req donation.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail("invalid json"))
		return
	}

	d, err := dc.service.Update(c.Request.Context(), uuid, donation.ToDomainUpdate(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to update donation"))
		dc.logger.Error("Update() error", zap.Error(err))
		return
	}
	if d == nil {
		c.JSON(http.StatusNotFound, envelope.Fail("donation not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Ok(donation.ToResponseDonation(*d)))
}

func (dc *DonationController) DeleteDonationHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("donation_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, envelope.Fail("donation_id must be a valid UUID"))
		return
	}

	deleted, err := dc.service.Delete(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Fail("failed to delete donation"))
		dc.logger.Error("Delete() error", zap.Error(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, envelope.Fail("donation not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.OkMessage("donation deleted"))
}
