package services

import (
	"fmt"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/pkg/collection"
)

// Revenue modes. "all" sums every payment row regardless of status,
// matching the historical report; "completed" counts only completed
// payments. Selected by REPORT_REVENUE_MODE.
const (
	RevenueModeAll       = "all"
	RevenueModeCompleted = "completed"
)

// ReportSummary is the admin dashboard aggregate.
type ReportSummary struct {
	TotalBookings    int64            `json:"totalBookings"`
	TotalRevenue     float64          `json:"totalRevenue"`
	BookingsByStatus map[string]int64 `json:"bookingsByStatus"`
}

// ReportService produces admin aggregates over bookings and payments.
type ReportService struct {
	bookings    *repositories.BookingRepository
	payments    *repositories.PaymentRepository
	revenueMode string
}

func NewReportService(
	bookings *repositories.BookingRepository,
	payments *repositories.PaymentRepository,
	revenueMode string,
) *ReportService {
	if revenueMode != RevenueModeCompleted {
		revenueMode = RevenueModeAll
	}
	return &ReportService{bookings: bookings, payments: payments, revenueMode: revenueMode}
}

// Summary returns total bookings, revenue per the configured mode, and a
// per-status booking count.
func (s *ReportService) Summary() (ReportSummary, error) {
	total, err := s.bookings.Count()
	if err != nil {
		return ReportSummary{}, fmt.Errorf("report: count bookings: %w", err)
	}

	var payments []models.Payment
	if s.revenueMode == RevenueModeCompleted {
		payments, err = s.payments.AllByStatus(models.PaymentCompleted)
	} else {
		payments, err = s.payments.All()
	}
	if err != nil {
		return ReportSummary{}, fmt.Errorf("report: load payments: %w", err)
	}

	revenue := collection.Sum(payments, func(p models.Payment) float64 { return p.Amount })

	bookings, err := s.bookings.All()
	if err != nil {
		return ReportSummary{}, fmt.Errorf("report: load bookings: %w", err)
	}

	byStatus := make(map[string]int64)
	for status, group := range collection.GroupBy(bookings, func(b models.Booking) string { return b.Status }) {
		byStatus[status] = int64(len(group))
	}

	return ReportSummary{
		TotalBookings:    total,
		TotalRevenue:     revenue,
		BookingsByStatus: byStatus,
	}, nil
}
