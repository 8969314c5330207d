package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
)

const msgInvalidBody = "Invalid request body"

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		httperr.BadRequest(c, msgInvalidBody)
		return false
	}
	return true
}

// pathID treats a malformed id like an unknown one.
func pathID(c *gin.Context, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}

// deleted is the body of every successful DELETE.
func deleted() gin.H {
	return gin.H{}
}
