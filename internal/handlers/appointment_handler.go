package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/appointment"
	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/venue-site/internal/usecase/appointment"
)

const msgAppointmentNotFound = "Appointment not found"

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list   *ucAppointment.ListAppointments
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	review *ucAppointment.ReviewAppointment
	delete *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	review *ucAppointment.ReviewAppointment,
	del *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:   list,
		create: create,
		update: update,
		review: review,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CreateAppointmentRequest has no status: bookings always start pending.
type CreateAppointmentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Date   *string `json:"date"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, msgAppointmentNotFound, "")
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// CREATE (public booking)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Name:  req.Name,
		Email: req.Email,
		Date:  req.Date,
		Notes: req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err, msgAppointmentNotFound, "")
		return
	}
	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, msgAppointmentNotFound)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		Name:   req.Name,
		Email:  req.Email,
		Date:   req.Date,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err, msgAppointmentNotFound, "")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// APPROVE / REJECT
// ======================================================

func (h *AppointmentHandler) Approve(c *gin.Context) {
	h.decide(c, domain.StatusApproved)
}

func (h *AppointmentHandler) Reject(c *gin.Context) {
	h.decide(c, domain.StatusRejected)
}

func (h *AppointmentHandler) decide(c *gin.Context, decision domain.Status) {
	id, ok := pathID(c, msgAppointmentNotFound)
	if !ok {
		return
	}

	ap, err := h.review.Execute(c.Request.Context(), id, decision)
	if err != nil {
		httperr.Respond(c, err, msgAppointmentNotFound, "")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, msgAppointmentNotFound)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, msgAppointmentNotFound, "")
		return
	}
	httpresp.OK(c, deleted())
}
