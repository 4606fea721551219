package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/app/services"
)

func seedReportData(t *testing.T, db *gorm.DB) {
	t.Helper()

	customer := seedUser(t, db, "CustomerA", models.RoleCustomer)
	tent := seedService(t, db, "Tent Rental", 100)

	bookings := []models.Booking{
		{UserID: customer.ID, ServiceID: tent.ID, Status: models.BookingPending, Quantity: 1, TotalPrice: 100},
		{UserID: customer.ID, ServiceID: tent.ID, Status: models.BookingPending, Quantity: 2, TotalPrice: 200},
		{UserID: customer.ID, ServiceID: tent.ID, Status: models.BookingApproved, Quantity: 1, TotalPrice: 100},
		{UserID: customer.ID, ServiceID: tent.ID, Status: models.BookingCompleted, Quantity: 1, TotalPrice: 100},
	}
	require.NoError(t, db.Create(&bookings).Error)

	payments := []models.Payment{
		{BookingID: bookings[0].ID, Amount: 100, Status: models.PaymentCompleted, Method: "card"},
		{BookingID: bookings[1].ID, Amount: 200, Status: models.PaymentPending, Method: "card"},
		{BookingID: bookings[2].ID, Amount: 50, Status: models.PaymentFailed, Method: "card"},
	}
	require.NoError(t, db.Create(&payments).Error)
}

func TestReportSummaryRevenueAllMode(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)

	svc := services.NewReportService(
		repositories.NewBookingRepository(db),
		repositories.NewPaymentRepository(db),
		services.RevenueModeAll,
	)

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.TotalBookings)
	// "all" sums every payment row, including pending and failed.
	assert.Equal(t, 350.0, summary.TotalRevenue)
	assert.Equal(t, int64(2), summary.BookingsByStatus[models.BookingPending])
	assert.Equal(t, int64(1), summary.BookingsByStatus[models.BookingApproved])
	assert.Equal(t, int64(1), summary.BookingsByStatus[models.BookingCompleted])
}

func TestReportSummaryRevenueCompletedMode(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)

	svc := services.NewReportService(
		repositories.NewBookingRepository(db),
		repositories.NewPaymentRepository(db),
		services.RevenueModeCompleted,
	)

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 100.0, summary.TotalRevenue)
}

func TestReportServiceUnknownModeFallsBackToAll(t *testing.T) {
	db := newTestDB(t)
	seedReportData(t, db)

	svc := services.NewReportService(
		repositories.NewBookingRepository(db),
		repositories.NewPaymentRepository(db),
		"bogus",
	)

	summary, err := svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 350.0, summary.TotalRevenue)
}
