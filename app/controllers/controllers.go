// Package controllers maps HTTP requests onto the service layer and
// service errors onto status codes.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/services"
	"github.com/trixtech/trixtech/pkg/logger"
	"github.com/trixtech/trixtech/pkg/resource"
	"github.com/trixtech/trixtech/pkg/response"
)

// urlID parses the {id} route parameter. Writes a 400 and returns false
// when it is not a positive integer.
func urlID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error onto the HTTP error taxonomy.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		response.Unauthorized(w)
	case errors.Is(err, services.ErrForbidden):
		response.Forbidden(w)
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrEmailTaken):
		response.Conflict(w, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrValidation):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err.Error())
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// userResource is the wire shape for a user. The credential never appears
// here regardless of what the model carries.
func userResource(u models.User) resource.Map {
	return resource.Map{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
	}
}
