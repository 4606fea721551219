package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/pkg/auth"
	"github.com/trixtech/trixtech/pkg/event"
	"github.com/trixtech/trixtech/pkg/metrics"
)

// Lifecycle events fired by BookingService. Payload is the models.Booking
// after the change (for deletes, the booking as it was before removal).
const (
	EventBookingCreated   = "booking.created"
	EventBookingApproved  = "booking.approved"
	EventBookingCompleted = "booking.completed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingDeleted   = "booking.deleted"
)

// transitions is the full set of legal status edges. Anything not listed
// fails with ErrInvalidTransition; completed and cancelled have no
// outgoing edges.
var transitions = map[string][]string{
	models.BookingPending:  {models.BookingApproved, models.BookingCancelled},
	models.BookingApproved: {models.BookingCompleted},
}

func transitionAllowed(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func transitionEvent(to string) string {
	switch to {
	case models.BookingApproved:
		return EventBookingApproved
	case models.BookingCompleted:
		return EventBookingCompleted
	case models.BookingCancelled:
		return EventBookingCancelled
	}
	return ""
}

// BookingInput is the request body for creating a booking. Any userId the
// client supplies is ignored; ownership always comes from the token.
type BookingInput struct {
	ServiceID uint   `json:"serviceId" validate:"required,gte=1"`
	Date      string `json:"date" validate:"required,date"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	Notes     string `json:"notes"`
}

// DeletePolicy decides whether an identity may delete a booking.
type DeletePolicy interface {
	CanDelete(ident auth.Identity, booking models.Booking) bool
}

// StrictDeletePolicy allows the owning customer to delete while the
// booking is still pending, and an admin at any status.
type StrictDeletePolicy struct{}

func (StrictDeletePolicy) CanDelete(ident auth.Identity, booking models.Booking) bool {
	if ident.IsAdmin() {
		return true
	}
	return booking.UserID == ident.ID && booking.Status == models.BookingPending
}

// LegacyDeletePolicy allows any authenticated identity to delete any
// booking. It reproduces the historical behavior and exists only for
// installs that depend on it; select it with BOOKING_DELETE_POLICY=legacy.
type LegacyDeletePolicy struct{}

func (LegacyDeletePolicy) CanDelete(auth.Identity, models.Booking) bool { return true }

// DeletePolicyFromConfig maps a BOOKING_DELETE_POLICY value to a policy.
// Unknown values fall back to strict.
func DeletePolicyFromConfig(name string) DeletePolicy {
	if name == "legacy" {
		return LegacyDeletePolicy{}
	}
	return StrictDeletePolicy{}
}

// BookingService owns the booking lifecycle: creation with price snapshot,
// role-filtered listing, the status state machine, and deletion.
type BookingService struct {
	bookings *repositories.BookingRepository
	catalog  *repositories.ServiceRepository
	deletes  DeletePolicy
}

func NewBookingService(
	bookings *repositories.BookingRepository,
	catalog *repositories.ServiceRepository,
	deletes DeletePolicy,
) *BookingService {
	return &BookingService{bookings: bookings, catalog: catalog, deletes: deletes}
}

// Create makes a pending booking owned by ident. TotalPrice is snapshotted
// as service.price × quantity at this instant; later price changes do not
// touch existing bookings. Returns ErrNotFound when the service is absent.
func (s *BookingService) Create(ident auth.Identity, in BookingInput) (models.Booking, error) {
	if in.Quantity < 1 {
		return models.Booking{}, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	service, err := s.catalog.FindByID(in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, fmt.Errorf("booking: resolve service %d: %w", in.ServiceID, err)
	}

	booking := models.Booking{
		UserID:     ident.ID,
		ServiceID:  service.ID,
		Status:     models.BookingPending,
		Date:       in.Date,
		Quantity:   in.Quantity,
		TotalPrice: service.Price * float64(in.Quantity),
		Notes:      in.Notes,
	}

	if err := s.bookings.Create(&booking); err != nil {
		return models.Booking{}, fmt.Errorf("booking: create: %w", err)
	}

	metrics.BookingsCreated.Inc()
	event.FireAsync(EventBookingCreated, booking)
	return booking, nil
}

// List returns the bookings visible to ident: customers see only their own
// with the service expanded; admins see everything with user and service
// expanded. Creation order, no pagination.
func (s *BookingService) List(ident auth.Identity) ([]models.Booking, error) {
	if ident.IsAdmin() {
		return s.bookings.AllExpanded()
	}
	return s.bookings.AllByUser(ident.ID)
}

// UpdateStatus moves a booking along the transition table. Admin only;
// the controller enforces the role, this re-checks it as a backstop.
//
// The write is conditional on the status read above it, so two concurrent
// transitions cannot both succeed: the loser observes zero affected rows
// and gets ErrInvalidTransition.
func (s *BookingService) UpdateStatus(ident auth.Identity, id uint, newStatus string) (models.Booking, error) {
	if !ident.IsAdmin() {
		return models.Booking{}, ErrForbidden
	}

	booking, err := s.bookings.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, fmt.Errorf("booking: find %d: %w", id, err)
	}

	if !transitionAllowed(booking.Status, newStatus) {
		return models.Booking{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	rows, err := s.bookings.UpdateStatusFrom(id, booking.Status, newStatus)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking: update status %d: %w", id, err)
	}
	if rows == 0 {
		// Lost the race: someone else transitioned (or deleted) first.
		return models.Booking{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	from := booking.Status
	booking.Status = newStatus

	metrics.BookingTransitions.WithLabelValues(from, newStatus).Inc()
	if ev := transitionEvent(newStatus); ev != "" {
		event.FireAsync(ev, booking)
	}
	return booking, nil
}

// Delete hard-deletes a booking if the configured policy allows it.
// Returns ErrNotFound when the id does not resolve, ErrForbidden when the
// policy rejects the caller.
func (s *BookingService) Delete(ident auth.Identity, id uint) error {
	booking, err := s.bookings.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("booking: find %d: %w", id, err)
	}

	if !s.deletes.CanDelete(ident, booking) {
		return ErrForbidden
	}

	if _, err := s.bookings.Delete(id); err != nil {
		return fmt.Errorf("booking: delete %d: %w", id, err)
	}

	event.FireAsync(EventBookingDeleted, booking)
	return nil
}
