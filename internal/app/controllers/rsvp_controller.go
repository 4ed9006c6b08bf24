package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/app/services"
	"github.com/tmercan/fightnight/internal/middleware"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/session"
)

// RSVPController handles attendance and waiver mutations
type RSVPController struct {
	rsvpService   services.RSVPService
	waiverService services.WaiverService
	provider      *session.Provider
}

// NewRSVPController creates a new RSVPController
func NewRSVPController(rsvpService services.RSVPService, waiverService services.WaiverService, provider *session.Provider) *RSVPController {
	return &RSVPController{
		rsvpService:   rsvpService,
		waiverService: waiverService,
		provider:      provider,
	}
}

// RSVP records the viewer's intention to attend the event.
func (c *RSVPController) RSVP(ctx *gin.Context) {
	eventID := ctx.Param("id")

	var req dto.RSVPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.fail(ctx, apperrors.NewValidationError("invalid rsvp payload: "+err.Error()))
		return
	}

	sess := middleware.SessionFrom(ctx)
	rsvp, err := c.rsvpService.RSVP(ctx.Request.Context(), sess, eventID, &req)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(rsvp))
}

// SignWaiver records the viewer's signed waiver for the event.
func (c *RSVPController) SignWaiver(ctx *gin.Context) {
	eventID := ctx.Param("id")

	sess := middleware.SessionFrom(ctx)
	waiver, err := c.waiverService.Sign(ctx.Request.Context(), sess, eventID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(waiver))
}

func (c *RSVPController) fail(ctx *gin.Context, err error) {
	middleware.HandleAPIError(ctx, c.provider.LoginURL(ctx.Request.URL.RequestURI()), err)
}
