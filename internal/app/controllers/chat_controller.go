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

// ChatController handles the event chat panel
type ChatController struct {
	chatService services.ChatService
	provider    *session.Provider
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, provider *session.Provider) *ChatController {
	return &ChatController{
		chatService: chatService,
		provider:    provider,
	}
}

// Panel serves the chat panel payload. The browser re-requests it on the
// chat poll cadence; the thread binding refreshes on the same clock.
func (c *ChatController) Panel(ctx *gin.Context) {
	eventID := ctx.Param("id")

	sess := middleware.SessionFrom(ctx)
	resp, err := c.chatService.Panel(ctx.Request.Context(), sess, eventID)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Send posts a message to the event's thread. A body that trims to nothing
// is accepted and dropped so the composer can submit freely.
func (c *ChatController) Send(ctx *gin.Context) {
	eventID := ctx.Param("id")

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.fail(ctx, apperrors.NewValidationError("invalid message payload: "+err.Error()))
		return
	}

	sess := middleware.SessionFrom(ctx)
	message, err := c.chatService.Send(ctx.Request.Context(), sess, eventID, req.Body)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if message == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

func (c *ChatController) fail(ctx *gin.Context, err error) {
	middleware.HandleAPIError(ctx, c.provider.LoginURL(ctx.Request.URL.RequestURI()), err)
}
