// Package booking is the booking engine: it owns creation preconditions,
// the WAITING -> APPROVED/REJECTED transition and the state-filtered
// booking views for bookers and item owners.
package booking

import (
	"context"
	"errors"
	"time"

	"stuffSharing/internal/models"
	"stuffSharing/internal/service"
	"stuffSharing/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserStore
type UserStore interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemStore
type ItemStore interface {
	ItemByID(ctx context.Context, itemID int64) (*models.Item, error)
	ItemIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStore
type BookingStore interface {
	SaveBooking(ctx context.Context, booking *models.Booking) (int64, error)
	BookingByID(ctx context.Context, bookingID int64) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, from, to models.BookingStatus) error
	ListByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, page models.Page) ([]models.Booking, error)
	ListByItems(ctx context.Context, itemIDs []int64, state models.BookingState, now time.Time, page models.Page) ([]models.Booking, error)
}

type Service struct {
	bookings BookingStore
	items    ItemStore
	users    UserStore
	now      func() time.Time
}

// New builds the engine. The clock is injected so tests can pin "now";
// every operation reads it exactly once.
func New(bookings BookingStore, items ItemStore, users UserStore, now func() time.Time) *Service {
	return &Service{
		bookings: bookings,
		items:    items,
		users:    users,
		now:      now,
	}
}

// Create validates and persists a new WAITING booking. The precondition
// order is fixed: first failure wins.
func (s *Service) Create(ctx context.Context, bookerID, itemID int64, start, end *time.Time) (*models.Booking, error) {
	now := s.now()

	switch {
	case start == nil:
		return nil, service.Validationf("start is null")
	case end == nil:
		return nil, service.Validationf("end is null")
	case start.Before(now):
		return nil, service.Validationf("start in past")
	case end.Before(now):
		return nil, service.Validationf("end in past")
	case start.After(*end):
		return nil, service.Validationf("start after end")
	case start.Equal(*end):
		return nil, service.Validationf("start equals end")
	}

	exists, err := s.users.UserExists(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, service.NotFoundf("there's no user with id %d", bookerID)
	}

	item, err := s.items.ItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return nil, service.NotFoundf("there's no item with id %d", itemID)
		}
		return nil, err
	}
	// self-booking is reported as not-found, not as a permission error
	if item.OwnerID == bookerID {
		return nil, service.NotFoundf("item belongs to booker")
	}
	if !item.Available {
		return nil, service.NotAvailablef("item %d is not available", itemID)
	}

	booking := &models.Booking{
		Start:    *start,
		End:      *end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   models.StatusWaiting,
	}

	id, err := s.bookings.SaveBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	return s.bookings.BookingByID(ctx, id)
}

// SetApproval resolves a WAITING booking to APPROVED or REJECTED. Only the
// item owner may resolve, and only once: the store write re-checks the
// WAITING status so a concurrent double-approval loses.
func (s *Service) SetApproval(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != models.StatusWaiting {
		return nil, service.NotAvailablef("cannot change status from %s", booking.Status)
	}
	if booking.Item.OwnerID != ownerID {
		return nil, service.NotFoundf("booking item does not belong to this user")
	}

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}

	if err = s.bookings.UpdateBookingStatus(ctx, bookingID, models.StatusWaiting, status); err != nil {
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil, service.NotAvailablef("booking %d is already resolved", bookingID)
		}
		return nil, err
	}

	booking.Status = status

	return booking, nil
}

// GetByID returns the booking if the caller is its booker or the item
// owner. Anyone else gets not-found, indistinguishable from absence.
func (s *Service) GetByID(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BookerID != userID && booking.Item.OwnerID != userID {
		return nil, service.NotFoundf("booking %d is not visible to this user", bookingID)
	}

	return booking, nil
}

// ListByBooker returns the booker's bookings filtered by state, ordered by
// start descending.
func (s *Service) ListByBooker(ctx context.Context, bookerID int64, state models.BookingState, page models.Page) ([]models.Booking, error) {
	exists, err := s.users.UserExists(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, service.NotFoundf("there's no user with id %d", bookerID)
	}

	return s.bookings.ListByBooker(ctx, bookerID, state, s.now(), page)
}

// ListByOwnerItems returns the bookings of every item the owner has,
// filtered by state, ordered by start descending.
func (s *Service) ListByOwnerItems(ctx context.Context, ownerID int64, state models.BookingState, page models.Page) ([]models.Booking, error) {
	itemIDs, err := s.items.ItemIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return nil, service.NotFoundf("no items belong to user %d", ownerID)
	}

	return s.bookings.ListByItems(ctx, itemIDs, state, s.now(), page)
}

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookings.BookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, service.NotFoundf("there's no booking with id %d", bookingID)
		}
		return nil, err
	}

	return booking, nil
}
