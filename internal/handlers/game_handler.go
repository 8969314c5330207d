package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/httpresp"
	ucGame "github.com/BruksfildServices01/venue-site/internal/usecase/game"
)

const (
	msgGameNotFound  = "Game not found"
	msgGameKeyExists = "Game key already exists"
)

type GameHandler struct {
	list   *ucGame.ListGames
	create *ucGame.CreateGame
	delete *ucGame.DeleteGame
}

func NewGameHandler(
	list *ucGame.ListGames,
	create *ucGame.CreateGame,
	del *ucGame.DeleteGame,
) *GameHandler {
	return &GameHandler{list: list, create: create, delete: del}
}

type CreateGameRequest struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (h *GameHandler) List(c *gin.Context) {
	games, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, msgGameNotFound, msgGameKeyExists)
		return
	}
	httpresp.List(c, games)
}

// Create derives the key from the name when the caller leaves it out.
func (h *GameHandler) Create(c *gin.Context) {
	var req CreateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.create.Execute(c.Request.Context(), ucGame.CreateGameInput{
		Name:        req.Name,
		Key:         req.Key,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, err, msgGameNotFound, msgGameKeyExists)
		return
	}
	httpresp.Created(c, g)
}

func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, msgGameNotFound)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, msgGameNotFound, msgGameKeyExists)
		return
	}
	httpresp.OK(c, deleted())
}
