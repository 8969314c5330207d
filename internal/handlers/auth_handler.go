package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/venue-site/internal/auth"
	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/httpresp"
	"github.com/BruksfildServices01/venue-site/internal/middleware"
	ucAuth "github.com/BruksfildServices01/venue-site/internal/usecase/auth"
)

type AuthHandler struct {
	login        *ucAuth.Login
	tokens       middleware.TokenVerifier
	secureCookie bool
}

func NewAuthHandler(login *ucAuth.Login, tokens middleware.TokenVerifier, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		login:        login,
		tokens:       tokens,
		secureCookie: secureCookie,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Responses ---------

type sessionUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

type meResponse struct {
	Success bool         `json:"success"`
	User    *sessionUser `json:"user"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ucAuth.ErrInvalidCredentials) {
			httperr.Write(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		httperr.Respond(c, err, "", "")
		return
	}

	h.setSessionCookie(c, res.Token, int(auth.TokenTTL.Seconds()))
	httpresp.Message(c, "Logged in successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	httpresp.Message(c, "Logged out successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.SessionFromRequest(c, h.tokens)
	if !ok {
		c.JSON(http.StatusUnauthorized, meResponse{Success: false})
		return
	}

	c.JSON(http.StatusOK, meResponse{
		Success: true,
		User: &sessionUser{
			ID:        claims.ID,
			Username:  claims.Username,
			IssuedAt:  claims.IssuedAt.Unix(),
			ExpiresAt: claims.ExpiresAt.Unix(),
		},
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, value, maxAge, "/", "", h.secureCookie, true)
}
