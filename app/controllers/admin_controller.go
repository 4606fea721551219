package controllers

import (
	"net/http"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/app/services"
	"github.com/trixtech/trixtech/pkg/resource"
	"github.com/trixtech/trixtech/pkg/response"
)

// AdminController serves /api/admin/*. All routes are admin-only via
// router middleware.
type AdminController struct {
	users   *repositories.UserRepository
	reports *services.ReportService
}

func NewAdminController(users *repositories.UserRepository, reports *services.ReportService) *AdminController {
	return &AdminController{users: users, reports: reports}
}

// Users handles GET /api/admin/users: the customer accounts, oldest first.
func (c *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.AllByRole(models.RoleCustomer)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.OK(w, resource.TransformSlice(users, userResource))
}

// Reports handles GET /api/admin/reports.
func (c *AdminController) Reports(w http.ResponseWriter, r *http.Request) {
	summary, err := c.reports.Summary()
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.OK(w, summary)
}
