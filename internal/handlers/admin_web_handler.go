package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/venue-site/internal/middleware"
)

// AdminWebHandler serves the admin shell pages. Access is decided by the
// session gate in front of it; the pages themselves only call the JSON API.
type AdminWebHandler struct {
	tokens middleware.TokenVerifier
}

func NewAdminWebHandler(tokens middleware.TokenVerifier) *AdminWebHandler {
	return &AdminWebHandler{tokens: tokens}
}

func (h *AdminWebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page":  "login",
		"Title": "Admin login",
	})
}

func (h *AdminWebHandler) Dashboard(c *gin.Context) {
	username := ""
	if claims, ok := middleware.SessionFromRequest(c, h.tokens); ok {
		username = claims.Username
	}

	c.HTML(http.StatusOK, "base", gin.H{
		"Page":     "dashboard",
		"Title":    "Dashboard",
		"Username": username,
	})
}
