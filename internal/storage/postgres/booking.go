package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"

	"stuffSharing/internal/models"
	"stuffSharing/internal/storage"
)

const (
	tableBookings = "bookings"
	colStartDate  = "start_date"
	colEndDate    = "end_date"
	colItemID     = "item_id"
	colBookerID   = "booker_id"
	colStatus     = "status"
)

func (s *Storage) SaveBooking(ctx context.Context, booking *models.Booking) (int64, error) {
	query := `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		booking.Start,
		booking.End,
		booking.ItemID,
		booking.BookerID,
		booking.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save booking: %w", err)
	}

	return id, nil
}

// BookingByID returns the booking with its booker and item attached.
func (s *Storage) BookingByID(ctx context.Context, bookingID int64) (*models.Booking, error) {
	query := `
		SELECT id, start_date, end_date, item_id, booker_id, status
		FROM bookings
		WHERE id = $1`

	var booking models.Booking
	err := s.db.GetContext(ctx, &booking, query, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	rows := []models.Booking{booking}
	if err = s.attachRelations(ctx, rows); err != nil {
		return nil, err
	}

	return &rows[0], nil
}

// UpdateBookingStatus moves a booking from one status to another in a single
// statement. A zero row count means the booking is gone or its status is no
// longer `from`, which is how a concurrent double-approval loses the race.
func (s *Storage) UpdateBookingStatus(ctx context.Context, bookingID int64, from, to models.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2 AND status = $3`

	result, err := s.db.ExecContext(ctx, query, to, bookingID, from)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrStatusConflict
	}

	return nil
}

func (s *Storage) ListByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, page models.Page) ([]models.Booking, error) {
	return s.listBookings(ctx, goqu.C(colBookerID).Eq(bookerID), state, now, page)
}

func (s *Storage) ListByItems(ctx context.Context, itemIDs []int64, state models.BookingState, now time.Time, page models.Page) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return []models.Booking{}, nil
	}
	return s.listBookings(ctx, goqu.C(colItemID).In(itemIDs), state, now, page)
}

func (s *Storage) listBookings(ctx context.Context, owner goqu.Expression, state models.BookingState, now time.Time, page models.Page) ([]models.Booking, error) {
	query, args, err := listBookingsSQL(s.qb, owner, state, now, page)
	if err != nil {
		return nil, fmt.Errorf("failed to build bookings query: %w", err)
	}

	bookings := []models.Booking{}
	if err = s.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	if err = s.attachRelations(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// listBookingsSQL composes the filtered listing from an owner expression
// (booker or owned-item set) and the state predicate, ordered by start
// descending with the page applied after ordering.
func listBookingsSQL(qb goqu.DialectWrapper, owner goqu.Expression, state models.BookingState, now time.Time, page models.Page) (string, []interface{}, error) {
	conditions := append([]goqu.Expression{owner}, stateConditions(state, now)...)

	return qb.From(tableBookings).
		Select("id", colStartDate, colEndDate, colItemID, colBookerID, colStatus).
		Where(conditions...).
		Order(goqu.C(colStartDate).Desc()).
		Limit(page.Size).
		Offset(page.From).
		Prepared(true).
		ToSQL()
}

// stateConditions is the single dispatch point for the six filter states.
// Every time comparison uses the same `now` captured once per call.
func stateConditions(state models.BookingState, now time.Time) []goqu.Expression {
	switch state {
	case models.StateCurrent:
		return []goqu.Expression{
			goqu.C(colStartDate).Lte(now),
			goqu.C(colEndDate).Gt(now),
		}
	case models.StatePast:
		return []goqu.Expression{goqu.C(colEndDate).Lt(now)}
	case models.StateFuture:
		return []goqu.Expression{goqu.C(colStartDate).Gt(now)}
	case models.StateWaiting:
		return []goqu.Expression{goqu.C(colStatus).Eq(string(models.StatusWaiting))}
	case models.StateRejected:
		return []goqu.Expression{goqu.C(colStatus).Eq(string(models.StatusRejected))}
	default: // models.StateAll
		return nil
	}
}

// LastApprovedBefore returns the approved booking of the item with the latest
// start still before now, or nil when there is none.
func (s *Storage) LastApprovedBefore(ctx context.Context, itemID int64, now time.Time) (*models.LastNextBooking, error) {
	return s.firstApproved(ctx, itemID, goqu.C(colStartDate).Lt(now), goqu.C(colStartDate).Desc())
}

// NextApprovedAfter returns the approved booking of the item with the
// earliest start after now, or nil when there is none.
func (s *Storage) NextApprovedAfter(ctx context.Context, itemID int64, now time.Time) (*models.LastNextBooking, error) {
	return s.firstApproved(ctx, itemID, goqu.C(colStartDate).Gt(now), goqu.C(colStartDate).Asc())
}

func (s *Storage) firstApproved(ctx context.Context, itemID int64, timeCond goqu.Expression, order exp.OrderedExpression) (*models.LastNextBooking, error) {
	query, args, err := s.qb.From(tableBookings).
		Select("id", colBookerID).
		Where(
			goqu.C(colItemID).Eq(itemID),
			goqu.C(colStatus).Eq(string(models.StatusApproved)),
			timeCond,
		).
		Order(order).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build last/next booking query: %w", err)
	}

	var row struct {
		ID       int64 `db:"id"`
		BookerID int64 `db:"booker_id"`
	}
	if err = s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last/next booking: %w", err)
	}

	return &models.LastNextBooking{ID: row.ID, BookerID: row.BookerID}, nil
}

// ApprovedByItems returns every approved booking of the given items ordered
// by start ascending, for single-pass grouping in the batch item listing.
func (s *Storage) ApprovedByItems(ctx context.Context, itemIDs []int64) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return []models.Booking{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, start_date, end_date, item_id, booker_id, status
		FROM bookings
		WHERE item_id IN (?) AND status = ?
		ORDER BY start_date ASC`,
		itemIDs, models.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to build approved bookings query: %w", err)
	}

	bookings := []models.Booking{}
	if err = s.db.SelectContext(ctx, &bookings, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list approved bookings: %w", err)
	}

	return bookings, nil
}

// HasFinishedBooking reports whether the booker has an approved booking of
// the item that already ended. Used to gate comment creation.
func (s *Storage) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE booker_id = $1 AND item_id = $2 AND end_date < $3 AND status = $4
		)`

	var exists bool
	err := s.db.GetContext(ctx, &exists, query, bookerID, itemID, now, models.StatusApproved)
	if err != nil {
		return false, fmt.Errorf("failed to check finished booking: %w", err)
	}

	return exists, nil
}

// attachRelations hydrates the Booker and Item of each booking with two
// batched lookups instead of one query per booking.
func (s *Storage) attachRelations(ctx context.Context, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	userIDs := make([]int64, 0, len(bookings))
	itemIDs := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		userIDs = append(userIDs, b.BookerID)
		itemIDs = append(itemIDs, b.ItemID)
	}

	users, err := s.usersByIDs(ctx, userIDs)
	if err != nil {
		return err
	}
	items, err := s.itemsByIDs(ctx, itemIDs)
	if err != nil {
		return err
	}

	for i := range bookings {
		if u, ok := users[bookings[i].BookerID]; ok {
			booker := u
			bookings[i].Booker = &booker
		}
		if it, ok := items[bookings[i].ItemID]; ok {
			item := it
			bookings[i].Item = &item
		}
	}

	return nil
}
