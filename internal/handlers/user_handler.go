package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/httpresp"
	ucAuth "github.com/BruksfildServices01/venue-site/internal/usecase/auth"
)

type UserHandler struct {
	create *ucAuth.CreateUser
}

func NewUserHandler(create *ucAuth.CreateUser) *UserHandler {
	return &UserHandler{create: create}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Create adds another admin account. The password is never echoed back.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.create.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err, "", "Username already exists")
		return
	}

	httpresp.Created(c, gin.H{"username": u.Username})
}
