package models

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID       int64         `json:"id" db:"id"`
	Start    time.Time     `json:"start" db:"start_date"`
	End      time.Time     `json:"end" db:"end_date"`
	ItemID   int64         `json:"-" db:"item_id"`
	BookerID int64         `json:"-" db:"booker_id"`
	Status   BookingStatus `json:"status" db:"status"`
	Booker   *User         `json:"booker,omitempty"`
	Item     *Item         `json:"item,omitempty"`
}

// BookingState is a view selector over bookings, never stored on a booking.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState accepts only the closed set of filter states, so the
// handlers reject anything else before it reaches the services.
func ParseBookingState(s string) (BookingState, error) {
	switch state := BookingState(s); state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	default:
		return "", fmt.Errorf("Unknown state: UNSUPPORTED_STATUS")
	}
}

// LastNextBooking is the short form of an approved booking attached to an
// item view, computed per request.
type LastNextBooking struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}
