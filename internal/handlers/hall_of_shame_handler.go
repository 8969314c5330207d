package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/dto"
	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/httpresp"
	"github.com/BruksfildServices01/venue-site/internal/middleware"
	ucHall "github.com/BruksfildServices01/venue-site/internal/usecase/hallofshame"
)

const msgEntryNotFound = "Entry not found"

type HallOfShameHandler struct {
	list   *ucHall.ListEntries
	stats  *ucHall.LeaderboardStats
	create *ucHall.CreateEntry
	update *ucHall.UpdateEntry
	delete *ucHall.DeleteEntry
}

func NewHallOfShameHandler(
	list *ucHall.ListEntries,
	stats *ucHall.LeaderboardStats,
	create *ucHall.CreateEntry,
	update *ucHall.UpdateEntry,
	del *ucHall.DeleteEntry,
) *HallOfShameHandler {
	return &HallOfShameHandler{
		list:   list,
		stats:  stats,
		create: create,
		update: update,
		delete: del,
	}
}

// List accepts an optional ?game=<key> filter.
func (h *HallOfShameHandler) List(c *gin.Context) {
	entries, err := h.list.Execute(c.Request.Context(), c.Query("game"))
	if err != nil {
		httperr.Respond(c, err, msgEntryNotFound, "")
		return
	}
	httpresp.List(c, entries)
}

func (h *HallOfShameHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context(), c.Query("game"))
	if err != nil {
		httperr.Respond(c, err, msgEntryNotFound, "")
		return
	}
	httpresp.List(c, stats)
}

func (h *HallOfShameHandler) Create(c *gin.Context) {
	var req dto.HallOfShameRequest
	if !bindJSON(c, &req) {
		return
	}

	in := ucHall.CreateEntryInput{
		Paid:      req.Paid.Model(),
		Date:      req.Date,
		CreatedBy: sessionUserID(c),
	}
	if g := req.Game.Model(); g != nil {
		in.Game = *g
	}
	if p := req.Winner.Model(); p != nil {
		in.Winner = *p
	}
	if p := req.Loser.Model(); p != nil {
		in.Loser = *p
	}
	if r := req.Result.Model(); r != nil {
		in.Result = *r
	}
	if req.Roast != nil {
		in.Roast = *req.Roast
	}

	e, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err, msgEntryNotFound, "")
		return
	}
	httpresp.Created(c, e)
}

func (h *HallOfShameHandler) Update(c *gin.Context) {
	id, ok := pathID(c, msgEntryNotFound)
	if !ok {
		return
	}

	var req dto.HallOfShameRequest
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.update.Execute(c.Request.Context(), id, ucHall.UpdateEntryInput{
		Game:   req.Game.Model(),
		Winner: req.Winner.Model(),
		Loser:  req.Loser.Model(),
		Result: req.Result.Model(),
		Roast:  req.Roast,
		Paid:   req.Paid.Model(),
		Date:   req.Date,
	})
	if err != nil {
		httperr.Respond(c, err, msgEntryNotFound, "")
		return
	}
	httpresp.OK(c, e)
}

func (h *HallOfShameHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, msgEntryNotFound)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, msgEntryNotFound, "")
		return
	}
	httpresp.OK(c, deleted())
}

// sessionUserID is nil when the session id is not a user uuid.
func sessionUserID(c *gin.Context) *uuid.UUID {
	claims := middleware.Claims(c)
	if claims == nil {
		return nil
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil
	}
	return &id
}
