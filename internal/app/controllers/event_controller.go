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

// EventController handles the event pages and event mutations
type EventController struct {
	eventService services.EventService
	provider     *session.Provider
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, provider *session.Provider) *EventController {
	return &EventController{
		eventService: eventService,
		provider:     provider,
	}
}

// List serves the events listing page payload.
func (c *EventController) List(ctx *gin.Context) {
	sess := middleware.SessionFrom(ctx)
	resp, err := c.eventService.ListPage(ctx.Request.Context(), sess)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Details serves the event page payload. The event id travels in the query
// string, matching the page-to-URL mapping the frontend uses.
func (c *EventController) Details(ctx *gin.Context) {
	eventID := ctx.Query("id")
	if eventID == "" {
		c.fail(ctx, apperrors.NewValidationError("id query parameter is required"))
		return
	}

	sess := middleware.SessionFrom(ctx)
	resp, err := c.eventService.Details(ctx.Request.Context(), sess, eventID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Create handles the organizer's event form submission.
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.fail(ctx, apperrors.NewValidationError("invalid event payload: "+err.Error()))
		return
	}

	sess := middleware.SessionFrom(ctx)
	event, err := c.eventService.CreateEvent(ctx.Request.Context(), sess, &req)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// AddBout handles the organizer's add-bout form submission.
func (c *EventController) AddBout(ctx *gin.Context) {
	eventID := ctx.Param("id")

	var req dto.CreateBoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.fail(ctx, apperrors.NewValidationError("invalid bout payload: "+err.Error()))
		return
	}

	sess := middleware.SessionFrom(ctx)
	bout, err := c.eventService.AddBout(ctx.Request.Context(), sess, eventID, &req)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(bout))
}

func (c *EventController) fail(ctx *gin.Context, err error) {
	middleware.HandleAPIError(ctx, c.provider.LoginURL(ctx.Request.URL.RequestURI()), err)
}
