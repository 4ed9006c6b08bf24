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

// ProfileController handles the profile page and fighter profile creation
type ProfileController struct {
	fighterService services.FighterService
	provider       *session.Provider
}

// NewProfileController creates a new ProfileController
func NewProfileController(fighterService services.FighterService, provider *session.Provider) *ProfileController {
	return &ProfileController{
		fighterService: fighterService,
		provider:       provider,
	}
}

// Show serves the profile page payload.
func (c *ProfileController) Show(ctx *gin.Context) {
	sess := middleware.SessionFrom(ctx)
	resp, err := c.fighterService.Profile(ctx.Request.Context(), sess)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CreateFighter handles the fighter profile form submission.
func (c *ProfileController) CreateFighter(ctx *gin.Context) {
	var req dto.CreateFighterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.fail(ctx, apperrors.NewValidationError("invalid fighter payload: "+err.Error()))
		return
	}

	sess := middleware.SessionFrom(ctx)
	fighter, err := c.fighterService.CreateProfile(ctx.Request.Context(), sess, &req)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(fighter))
}

func (c *ProfileController) fail(ctx *gin.Context, err error) {
	middleware.HandleAPIError(ctx, c.provider.LoginURL(ctx.Request.URL.RequestURI()), err)
}
