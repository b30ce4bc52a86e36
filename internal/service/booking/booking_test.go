package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stuffSharing/internal/models"
	"stuffSharing/internal/service"
	"stuffSharing/internal/service/booking/mocks"
	"stuffSharing/internal/storage"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func timePtr(t time.Time) *time.Time { return &t }

func TestCreate(t *testing.T) {
	t.Parallel()

	start := fixedNow.Add(24 * time.Hour)
	end := fixedNow.Add(48 * time.Hour)

	testCases := []struct {
		name        string
		bookerID    int64
		itemID      int64
		start       *time.Time
		end         *time.Time
		mockSetup   func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore)
		wantErr     error
		wantErrText string
	}{
		{
			name:     "success",
			bookerID: 2,
			itemID:   1,
			start:    timePtr(start),
			end:      timePtr(end),
			mockSetup: func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {
				users.On("UserExists", mock.Anything, int64(2)).Return(true, nil)
				items.On("ItemByID", mock.Anything, int64(1)).
					Return(&models.Item{ID: 1, OwnerID: 1, Available: true}, nil)
				bookings.On("SaveBooking", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
					return b.Status == models.StatusWaiting && b.ItemID == 1 && b.BookerID == 2
				})).Return(int64(1), nil)
				bookings.On("BookingByID", mock.Anything, int64(1)).
					Return(&models.Booking{ID: 1, Start: start, End: end, ItemID: 1, BookerID: 2, Status: models.StatusWaiting}, nil)
			},
		},
		{
			name:        "nil start",
			bookerID:    2,
			itemID:      1,
			start:       nil,
			end:         timePtr(end),
			mockSetup:   func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {},
			wantErr:     service.ErrValidation,
			wantErrText: "start is null",
		},
		{
			name:        "nil end",
			bookerID:    2,
			itemID:      1,
			start:       timePtr(start),
			end:         nil,
			mockSetup:   func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {},
			wantErr:     service.ErrValidation,
			wantErrText: "end is null",
		},
		{
			name:        "start in past",
			bookerID:    2,
			itemID:      1,
			start:       timePtr(fixedNow.Add(-time.Hour)),
			end:         timePtr(end),
			mockSetup:   func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {},
			wantErr:     service.ErrValidation,
			wantErrText: "start in past",
		},
		{
			name:        "end in past",
			bookerID:    2,
			itemID:      1,
			start:       timePtr(start),
			end:         timePtr(fixedNow.Add(-time.Hour)),
			mockSetup:   func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {},
			wantErr:     service.ErrValidation,
			wantErrText: "end in past",
		},
		{
			name:        "start after end",
			bookerID:    2,
			itemID:      1,
			start:       timePtr(end),
			end:         timePtr(start),
			mockSetup:   func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {},
			wantErr:     service.ErrValidation,
			wantErrText: "start after end",
		},
		{
			name:        "start equals end",
			bookerID:    2,
			itemID:      1,
			start:       timePtr(start),
			end:         timePtr(start),
			mockSetup:   func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {},
			wantErr:     service.ErrValidation,
			wantErrText: "start equals end",
		},
		{
			name:     "unknown booker",
			bookerID: 99,
			itemID:   1,
			start:    timePtr(start),
			end:      timePtr(end),
			mockSetup: func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {
				users.On("UserExists", mock.Anything, int64(99)).Return(false, nil)
			},
			wantErr:     service.ErrNotFound,
			wantErrText: "there's no user with id 99",
		},
		{
			name:     "unknown item",
			bookerID: 2,
			itemID:   77,
			start:    timePtr(start),
			end:      timePtr(end),
			mockSetup: func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {
				users.On("UserExists", mock.Anything, int64(2)).Return(true, nil)
				items.On("ItemByID", mock.Anything, int64(77)).Return(nil, storage.ErrItemNotFound)
			},
			wantErr:     service.ErrNotFound,
			wantErrText: "there's no item with id 77",
		},
		{
			name:     "own item",
			bookerID: 1,
			itemID:   1,
			start:    timePtr(start),
			end:      timePtr(end),
			mockSetup: func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {
				users.On("UserExists", mock.Anything, int64(1)).Return(true, nil)
				items.On("ItemByID", mock.Anything, int64(1)).
					Return(&models.Item{ID: 1, OwnerID: 1, Available: true}, nil)
			},
			wantErr:     service.ErrNotFound,
			wantErrText: "item belongs to booker",
		},
		{
			name:     "item not available",
			bookerID: 2,
			itemID:   1,
			start:    timePtr(start),
			end:      timePtr(end),
			mockSetup: func(bookings *mocks.BookingStore, items *mocks.ItemStore, users *mocks.UserStore) {
				users.On("UserExists", mock.Anything, int64(2)).Return(true, nil)
				items.On("ItemByID", mock.Anything, int64(1)).
					Return(&models.Item{ID: 1, OwnerID: 1, Available: false}, nil)
			},
			wantErr:     service.ErrNotAvailable,
			wantErrText: "item 1 is not available",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookings := mocks.NewBookingStore(t)
			items := mocks.NewItemStore(t)
			users := mocks.NewUserStore(t)
			tc.mockSetup(bookings, items, users)

			svc := New(bookings, items, users, fixedClock)

			got, err := svc.Create(context.Background(), tc.bookerID, tc.itemID, tc.start, tc.end)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Contains(t, err.Error(), tc.wantErrText)
				assert.Nil(t, got)
				bookings.AssertNotCalled(t, "SaveBooking", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, int64(1), got.ID)
			assert.Equal(t, models.StatusWaiting, got.Status)
		})
	}
}

func TestSetApproval(t *testing.T) {
	t.Parallel()

	waiting := func() *models.Booking {
		return &models.Booking{
			ID:       1,
			ItemID:   1,
			BookerID: 2,
			Status:   models.StatusWaiting,
			Item:     &models.Item{ID: 1, OwnerID: 1, Available: true},
		}
	}

	testCases := []struct {
		name        string
		ownerID     int64
		approved    bool
		mockSetup   func(bookings *mocks.BookingStore)
		wantStatus  models.BookingStatus
		wantErr     error
		wantErrText string
	}{
		{
			name:     "approve",
			ownerID:  1,
			approved: true,
			mockSetup: func(bookings *mocks.BookingStore) {
				bookings.On("BookingByID", mock.Anything, int64(1)).Return(waiting(), nil)
				bookings.On("UpdateBookingStatus", mock.Anything, int64(1), models.StatusWaiting, models.StatusApproved).
					Return(nil)
			},
			wantStatus: models.StatusApproved,
		},
		{
			name:     "reject",
			ownerID:  1,
			approved: false,
			mockSetup: func(bookings *mocks.BookingStore) {
				bookings.On("BookingByID", mock.Anything, int64(1)).Return(waiting(), nil)
				bookings.On("UpdateBookingStatus", mock.Anything, int64(1), models.StatusWaiting, models.StatusRejected).
					Return(nil)
			},
			wantStatus: models.StatusRejected,
		},
		{
			name:     "already approved",
			ownerID:  1,
			approved: true,
			mockSetup: func(bookings *mocks.BookingStore) {
				b := waiting()
				b.Status = models.StatusApproved
				bookings.On("BookingByID", mock.Anything, int64(1)).Return(b, nil)
			},
			wantErr:     service.ErrNotAvailable,
			wantErrText: "cannot change status from APPROVED",
		},
		{
			name:     "not the owner",
			ownerID:  3,
			approved: true,
			mockSetup: func(bookings *mocks.BookingStore) {
				bookings.On("BookingByID", mock.Anything, int64(1)).Return(waiting(), nil)
			},
			wantErr:     service.ErrNotFound,
			wantErrText: "booking item does not belong to this user",
		},
		{
			name:     "missing booking",
			ownerID:  1,
			approved: true,
			mockSetup: func(bookings *mocks.BookingStore) {
				bookings.On("BookingByID", mock.Anything, int64(1)).Return(nil, storage.ErrBookingNotFound)
			},
			wantErr:     service.ErrNotFound,
			wantErrText: "there's no booking with id 1",
		},
		{
			name:     "lost the status race",
			ownerID:  1,
			approved: true,
			mockSetup: func(bookings *mocks.BookingStore) {
				bookings.On("BookingByID", mock.Anything, int64(1)).Return(waiting(), nil)
				bookings.On("UpdateBookingStatus", mock.Anything, int64(1), models.StatusWaiting, models.StatusApproved).
					Return(storage.ErrStatusConflict)
			},
			wantErr:     service.ErrNotAvailable,
			wantErrText: "booking 1 is already resolved",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookings := mocks.NewBookingStore(t)
			items := mocks.NewItemStore(t)
			users := mocks.NewUserStore(t)
			tc.mockSetup(bookings)

			svc := New(bookings, items, users, fixedClock)

			got, err := svc.SetApproval(context.Background(), tc.ownerID, 1, tc.approved)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Contains(t, err.Error(), tc.wantErrText)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	booking := func() *models.Booking {
		return &models.Booking{
			ID:       5,
			ItemID:   1,
			BookerID: 2,
			Status:   models.StatusApproved,
			Item:     &models.Item{ID: 1, OwnerID: 1},
		}
	}

	testCases := []struct {
		name        string
		userID      int64
		mockSetup   func(bookings *mocks.BookingStore)
		wantErr     error
		wantErrText string
	}{
		{
			name:   "booker sees it",
			userID: 2,
			mockSetup: func(bookings *mocks.BookingStore) {
				bookings.On("BookingByID", mock.Anything, int64(5)).Return(booking(), nil)
			},
		},
		{
			name:   "owner sees it",
			userID: 1,
			mockSetup: func(bookings *mocks.BookingStore) {
				bookings.On("BookingByID", mock.Anything, int64(5)).Return(booking(), nil)
			},
		},
		{
			name:   "stranger gets not found",
			userID: 7,
			mockSetup: func(bookings *mocks.BookingStore) {
				bookings.On("BookingByID", mock.Anything, int64(5)).Return(booking(), nil)
			},
			wantErr:     service.ErrNotFound,
			wantErrText: "booking 5 is not visible to this user",
		},
		{
			name:   "missing booking",
			userID: 2,
			mockSetup: func(bookings *mocks.BookingStore) {
				bookings.On("BookingByID", mock.Anything, int64(5)).Return(nil, storage.ErrBookingNotFound)
			},
			wantErr:     service.ErrNotFound,
			wantErrText: "there's no booking with id 5",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookings := mocks.NewBookingStore(t)
			items := mocks.NewItemStore(t)
			users := mocks.NewUserStore(t)
			tc.mockSetup(bookings)

			svc := New(bookings, items, users, fixedClock)

			got, err := svc.GetByID(context.Background(), tc.userID, 5)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Contains(t, err.Error(), tc.wantErrText)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, int64(5), got.ID)
		})
	}
}

func TestListByBooker(t *testing.T) {
	t.Parallel()

	page := models.DefaultPage()

	t.Run("passes state and clock through", func(t *testing.T) {
		t.Parallel()

		bookings := mocks.NewBookingStore(t)
		items := mocks.NewItemStore(t)
		users := mocks.NewUserStore(t)

		want := []models.Booking{{ID: 3}, {ID: 1}}

		users.On("UserExists", mock.Anything, int64(2)).Return(true, nil)
		bookings.On("ListByBooker", mock.Anything, int64(2), models.StatePast, fixedNow, page).
			Return(want, nil)

		svc := New(bookings, items, users, fixedClock)

		got, err := svc.ListByBooker(context.Background(), 2, models.StatePast, page)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown booker", func(t *testing.T) {
		t.Parallel()

		bookings := mocks.NewBookingStore(t)
		items := mocks.NewItemStore(t)
		users := mocks.NewUserStore(t)

		users.On("UserExists", mock.Anything, int64(9)).Return(false, nil)

		svc := New(bookings, items, users, fixedClock)

		got, err := svc.ListByBooker(context.Background(), 9, models.StateAll, page)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Contains(t, err.Error(), "there's no user with id 9")
		assert.Nil(t, got)
	})
}

func TestListByOwnerItems(t *testing.T) {
	t.Parallel()

	page := models.DefaultPage()

	t.Run("lists bookings of owned items", func(t *testing.T) {
		t.Parallel()

		bookings := mocks.NewBookingStore(t)
		items := mocks.NewItemStore(t)
		users := mocks.NewUserStore(t)

		want := []models.Booking{{ID: 2}}

		items.On("ItemIDsByOwner", mock.Anything, int64(1)).Return([]int64{1, 4}, nil)
		bookings.On("ListByItems", mock.Anything, []int64{1, 4}, models.StateWaiting, fixedNow, page).
			Return(want, nil)

		svc := New(bookings, items, users, fixedClock)

		got, err := svc.ListByOwnerItems(context.Background(), 1, models.StateWaiting, page)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("owner without items", func(t *testing.T) {
		t.Parallel()

		bookings := mocks.NewBookingStore(t)
		items := mocks.NewItemStore(t)
		users := mocks.NewUserStore(t)

		items.On("ItemIDsByOwner", mock.Anything, int64(6)).Return([]int64{}, nil)

		svc := New(bookings, items, users, fixedClock)

		got, err := svc.ListByOwnerItems(context.Background(), 6, models.StateAll, page)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Contains(t, err.Error(), "no items belong to user 6")
		assert.Nil(t, got)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		t.Parallel()

		bookings := mocks.NewBookingStore(t)
		items := mocks.NewItemStore(t)
		users := mocks.NewUserStore(t)

		items.On("ItemIDsByOwner", mock.Anything, int64(1)).Return(nil, errors.New("db down"))

		svc := New(bookings, items, users, fixedClock)

		got, err := svc.ListByOwnerItems(context.Background(), 1, models.StateAll, page)
		require.Error(t, err)
		assert.Nil(t, got)
	})
}
