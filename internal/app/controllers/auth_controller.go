package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/middleware"
	"github.com/tmercan/fightnight/internal/session"
)

// AuthController exposes the session to the browser and forwards login and
// logout to the hosted auth provider. There is no local credential handling.
type AuthController struct {
	provider *session.Provider
}

// NewAuthController creates a new AuthController
func NewAuthController(provider *session.Provider) *AuthController {
	return &AuthController{provider: provider}
}

// Session reports the resolved session state. The payload distinguishes an
// unresolved session from a known-anonymous one so pages never flash a login
// prompt before resolution completes.
func (c *AuthController) Session(ctx *gin.Context) {
	sess := middleware.SessionFrom(ctx)
	payload := gin.H{"state": sess.State.String()}
	if sess.IsAuthenticated() {
		payload["user"] = sess.User
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(payload))
}

// Login redirects to the hosted login page, carrying the URL to return to.
func (c *AuthController) Login(ctx *gin.Context) {
	next := ctx.Query("next")
	ctx.Redirect(http.StatusFound, c.provider.LoginURL(next))
}

// Logout drops the remote session and clears the token cookie.
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.provider.Logout(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, c.provider.LoginURL("/"), err)
		return
	}
	ctx.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}
