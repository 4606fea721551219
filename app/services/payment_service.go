package services

import (
	"fmt"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/pkg/metrics"
)

// Gateway charges a payment and reports the resulting status. The shipped
// implementation is MockGateway; a real processor slots in here without
// touching the booking engine.
type Gateway interface {
	Charge(bookingID uint, amount float64, method string) (status string, err error)
}

// MockGateway approves every charge unconditionally. It performs no
// verification of the amount against the booking total — a known,
// deliberate gap carried over from the reference deployment.
type MockGateway struct{}

func (MockGateway) Charge(uint, float64, string) (string, error) {
	return models.PaymentCompleted, nil
}

// PaymentInput is the request body for recording a payment.
type PaymentInput struct {
	BookingID uint    `json:"bookingId" validate:"required,gte=1"`
	Amount    float64 `json:"amount" validate:"required,gte=0"`
	Method    string  `json:"method" validate:"nullable,max=50"`
}

// PaymentService records payments against bookings via a Gateway.
type PaymentService struct {
	payments *repositories.PaymentRepository
	gateway  Gateway
}

func NewPaymentService(payments *repositories.PaymentRepository, gateway Gateway) *PaymentService {
	return &PaymentService{payments: payments, gateway: gateway}
}

// Record charges the gateway and stores the payment with whatever status
// the gateway returned. The booking reference is weak and not resolved.
func (s *PaymentService) Record(in PaymentInput) (models.Payment, error) {
	method := in.Method
	if method == "" {
		method = "card"
	}

	status, err := s.gateway.Charge(in.BookingID, in.Amount, method)
	if err != nil {
		return models.Payment{}, fmt.Errorf("payment: gateway charge: %w", err)
	}

	payment := models.Payment{
		BookingID: in.BookingID,
		Amount:    in.Amount,
		Status:    status,
		Method:    method,
	}

	if err := s.payments.Create(&payment); err != nil {
		return models.Payment{}, fmt.Errorf("payment: create: %w", err)
	}

	metrics.PaymentsRecorded.WithLabelValues(status).Inc()
	return payment, nil
}
