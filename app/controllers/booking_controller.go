package controllers

import (
	"net/http"

	"github.com/trixtech/trixtech/app/services"
	"github.com/trixtech/trixtech/pkg/bind"
	"github.com/trixtech/trixtech/pkg/middleware"
	"github.com/trixtech/trixtech/pkg/response"
)

type updateStatusInput struct {
	Status string `json:"status" validate:"required,in=pending,approved,completed,cancelled"`
}

// BookingController serves /api/bookings.
type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// List handles GET /api/bookings. Customers get their own bookings with
// the service expanded; admins get everything with user and service.
func (c *BookingController) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	list, err := c.bookings.List(ident)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.OK(w, list)
}

// Create handles POST /api/bookings. The owner is always the token
// identity; a userId in the body is ignored.
func (c *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var in services.BookingInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	booking, err := c.bookings.Create(ident, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, booking)
}

// UpdateStatus handles PUT /api/bookings/{id}. Admin only via router
// middleware; the body carries the target status and the transition table
// decides whether the edge is legal.
func (c *BookingController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in updateStatusInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	booking, err := c.bookings.UpdateStatus(ident, id, in.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.OK(w, booking)
}

// Delete handles DELETE /api/bookings/{id}. The configured delete policy
// decides who may remove what.
func (c *BookingController) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := c.bookings.Delete(ident, id); err != nil {
		respondError(w, r, err)
		return
	}
	response.Message(w, "booking deleted")
}
