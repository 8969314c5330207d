package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/venue-site/internal/auth"
)

func newTokens(t *testing.T) (*auth.TokenService, string) {
	t.Helper()
	tokens := auth.NewTokenService("test-secret")
	token, err := tokens.Issue("user-1", "admin")
	require.NoError(t, err)
	return tokens, token
}

func TestEvaluateGate(t *testing.T) {
	tokens, valid := newTokens(t)

	tests := []struct {
		name     string
		path     string
		token    string
		redirect string
	}{
		{"admin root without token", "/admin", "", LoginPath},
		{"admin page without token", "/admin/games", "", LoginPath},
		{"admin page with bad token", "/admin/games", "garbage", LoginPath},
		{"admin page with valid token", "/admin/games", valid, ""},
		{"admin root with valid token", "/admin", valid, ""},
		{"login without token", LoginPath, "", ""},
		{"login with bad token", LoginPath, "garbage", ""},
		{"login with valid token", LoginPath, valid, AdminPrefix},
		{"public page", "/leaderboard", "", ""},
		{"api path", "/api/games", "", ""},
		{"lookalike prefix", "/administrator", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EvaluateGate(tt.path, tt.token, tokens)
			assert.Equal(t, tt.redirect, d.Redirect)
			assert.Equal(t, tt.redirect == "", d.Pass())
		})
	}
}

func TestSessionGate_Redirects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, valid := newTokens(t)

	r := gin.New()
	r.Use(SessionGate(tokens))
	r.GET("/admin", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	r.GET("/admin/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: valid})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: valid})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dashboard", w.Body.String())
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, valid := newTokens(t)

	r := gin.New()
	r.POST("/api/games", RequireSession(tokens), func(c *gin.Context) {
		c.String(http.StatusCreated, Claims(c).Username)
	})

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
	}{
		{"no token", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bad cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
		}, http.StatusUnauthorized},
		{"valid cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: valid})
		}, http.StatusCreated},
		{"valid bearer", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+valid)
		}, http.StatusCreated},
		{"malformed bearer", func(r *http.Request) {
			r.Header.Set("Authorization", valid)
		}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/games", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "admin", w.Body.String())
			} else {
				assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, w.Body.String())
			}
		})
	}
}
