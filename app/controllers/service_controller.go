package controllers

import (
	"net/http"

	"github.com/trixtech/trixtech/app/services"
	"github.com/trixtech/trixtech/pkg/bind"
	"github.com/trixtech/trixtech/pkg/response"
)

// ServiceController serves the public catalog reads and the admin-only
// catalog mutations.
type ServiceController struct {
	catalog *services.CatalogService
}

func NewServiceController(catalog *services.CatalogService) *ServiceController {
	return &ServiceController{catalog: catalog}
}

// List handles GET /api/services. Public.
func (c *ServiceController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.catalog.List()
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.OK(w, list)
}

// Get handles GET /api/services/{id}. Public.
func (c *ServiceController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	service, err := c.catalog.Get(id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.OK(w, service)
}

// Create handles POST /api/services. Admin only via router middleware.
func (c *ServiceController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ServiceInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	service, err := c.catalog.Create(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, service)
}

// Update handles PUT /api/services/{id}. Admin only. Fields absent from
// the body keep their stored values.
func (c *ServiceController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in services.ServiceInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	service, err := c.catalog.Update(id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.OK(w, service)
}

// Delete handles DELETE /api/services/{id}. Admin only.
func (c *ServiceController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := c.catalog.Delete(id); err != nil {
		respondError(w, r, err)
		return
	}
	response.Message(w, "service deleted")
}
