// Package routes wires the HTTP surface: route table, auth requirements,
// and the controller behind each endpoint.
package routes

import (
	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/controllers"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/app/services"
	"github.com/trixtech/trixtech/config"
	"github.com/trixtech/trixtech/pkg/middleware"
	"github.com/trixtech/trixtech/pkg/rbac"
	"github.com/trixtech/trixtech/pkg/router"
)

// RegisterAPI builds the service graph on top of db and mounts every
// /api route on r.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	users := repositories.NewUserRepository(db)
	catalog := repositories.NewServiceRepository(db)
	bookings := repositories.NewBookingRepository(db)
	payments := repositories.NewPaymentRepository(db)

	deletePolicy := services.DeletePolicyFromConfig(config.BookingDeletePolicy())

	authService := services.NewAuthService(users)
	catalogService := services.NewCatalogService(catalog)
	bookingService := services.NewBookingService(bookings, catalog, deletePolicy)
	paymentService := services.NewPaymentService(payments, services.MockGateway{})
	reportService := services.NewReportService(bookings, payments, config.ReportRevenueMode())

	authController := controllers.NewAuthController(authService)
	serviceController := controllers.NewServiceController(catalogService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)
	adminController := controllers.NewAdminController(users, reportService)

	api := r.Group("/api")

	// Identity
	api.Post("/auth/register", "auth.register", authController.Register)
	api.Post("/auth/login", "auth.login", authController.Login)

	// Catalog reads are public.
	api.Get("/services", "services.list", serviceController.List)
	api.Get("/services/{id}", "services.get", serviceController.Get)

	// Catalog mutations are admin only.
	adminCatalog := api.Group("/services", middleware.Auth, rbac.HasRole("admin"))
	adminCatalog.Post("", "services.create", serviceController.Create)
	adminCatalog.Put("/{id}", "services.update", serviceController.Update)
	adminCatalog.Delete("/{id}", "services.delete", serviceController.Delete)

	// Bookings require a valid token; the service layer filters by role.
	booking := api.Group("/bookings", middleware.Auth)
	booking.Get("", "bookings.list", bookingController.List)
	booking.Post("", "bookings.create", bookingController.Create)
	booking.Put("/{id}", "bookings.updateStatus", bookingController.UpdateStatus, rbac.HasRole("admin"))
	booking.Delete("/{id}", "bookings.delete", bookingController.Delete)

	// Payments require a valid token, any role.
	api.Post("/payments", "payments.record", paymentController.Record, middleware.Auth)

	// Admin surface
	admin := api.Group("/admin", middleware.Auth, rbac.HasRole("admin"))
	admin.Get("/users", "admin.users", adminController.Users)
	admin.Get("/reports", "admin.reports", adminController.Reports)
}
