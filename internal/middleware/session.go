package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/venue-site/internal/auth"
	"github.com/BruksfildServices01/venue-site/internal/httperr"
)

const (
	CookieName = "auth_token"

	AdminPrefix = "/admin"
	LoginPath   = "/admin/login"

	ContextClaims = "sessionClaims"
)

// TokenVerifier is satisfied by *auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// GateDecision is the outcome of EvaluateGate. An empty Redirect means the
// request passes through.
type GateDecision struct {
	Redirect string
}

func (d GateDecision) Pass() bool {
	return d.Redirect == ""
}

// EvaluateGate decides admin page access from the path and the raw cookie
// value alone.
func EvaluateGate(path, token string, tokens TokenVerifier) GateDecision {
	isLogin := path == LoginPath
	isAdmin := path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")

	if !isAdmin {
		return GateDecision{}
	}

	valid := false
	if token != "" {
		_, err := tokens.Verify(token)
		valid = err == nil
	}

	if isLogin {
		if valid {
			return GateDecision{Redirect: AdminPrefix}
		}
		return GateDecision{}
	}

	if !valid {
		return GateDecision{Redirect: LoginPath}
	}
	return GateDecision{}
}

// SessionGate applies EvaluateGate to page requests.
func SessionGate(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)

		d := EvaluateGate(c.Request.URL.Path, token, tokens)
		if !d.Pass() {
			c.Redirect(http.StatusFound, d.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSession guards API routes. It re-verifies the token itself and
// answers 401 instead of redirecting.
func RequireSession(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := SessionFromRequest(c, tokens)
		if !ok {
			httperr.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// SessionFromRequest reads the session cookie, falling back to an
// "Authorization: Bearer" header for non-browser clients.
func SessionFromRequest(c *gin.Context, tokens TokenVerifier) (*auth.Claims, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		token = bearerToken(c.GetHeader("Authorization"))
	}
	if token == "" {
		return nil, false
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Claims returns the session stored by RequireSession.
func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
