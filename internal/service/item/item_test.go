package item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stuffSharing/internal/models"
	"stuffSharing/internal/service"
	"stuffSharing/internal/service/item/mocks"
	"stuffSharing/internal/storage"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type stores struct {
	items    *mocks.ItemStore
	users    *mocks.UserStore
	bookings *mocks.BookingStore
	comments *mocks.CommentStore
}

func newStores(t *testing.T) stores {
	return stores{
		items:    mocks.NewItemStore(t),
		users:    mocks.NewUserStore(t),
		bookings: mocks.NewBookingStore(t),
		comments: mocks.NewCommentStore(t),
	}
}

func (s stores) service() *Service {
	return New(s.items, s.users, s.bookings, s.comments, fixedClock)
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	item := &models.Item{ID: 1, Name: "drill", OwnerID: 1, Available: true}

	t.Run("owner gets last and next bookings", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)
		last := &models.LastNextBooking{ID: 3, BookerID: 2}
		next := &models.LastNextBooking{ID: 7, BookerID: 4}

		s.users.On("UserExists", mock.Anything, int64(1)).Return(true, nil)
		s.items.On("ItemByID", mock.Anything, int64(1)).Return(item, nil)
		s.comments.On("CommentsByItem", mock.Anything, int64(1)).Return([]models.Comment{}, nil)
		s.bookings.On("LastApprovedBefore", mock.Anything, int64(1), fixedNow).Return(last, nil)
		s.bookings.On("NextApprovedAfter", mock.Anything, int64(1), fixedNow).Return(next, nil)

		view, err := s.service().GetByID(context.Background(), 1, 1)
		require.NoError(t, err)
		assert.Equal(t, last, view.LastBooking)
		assert.Equal(t, next, view.NextBooking)
		assert.NotNil(t, view.Comments)
	})

	t.Run("non-owner never gets booking summaries", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.users.On("UserExists", mock.Anything, int64(2)).Return(true, nil)
		s.items.On("ItemByID", mock.Anything, int64(1)).Return(item, nil)
		s.comments.On("CommentsByItem", mock.Anything, int64(1)).Return(nil, nil)

		view, err := s.service().GetByID(context.Background(), 2, 1)
		require.NoError(t, err)
		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
		assert.NotNil(t, view.Comments)
		s.bookings.AssertNotCalled(t, "LastApprovedBefore", mock.Anything, mock.Anything, mock.Anything)
		s.bookings.AssertNotCalled(t, "NextApprovedAfter", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown viewer", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.users.On("UserExists", mock.Anything, int64(9)).Return(false, nil)

		view, err := s.service().GetByID(context.Background(), 9, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Contains(t, err.Error(), "there's no user with id 9")
		assert.Nil(t, view)
	})

	t.Run("unknown item", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.users.On("UserExists", mock.Anything, int64(1)).Return(true, nil)
		s.items.On("ItemByID", mock.Anything, int64(42)).Return(nil, storage.ErrItemNotFound)

		view, err := s.service().GetByID(context.Background(), 1, 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Contains(t, err.Error(), "there's no item with id 42")
		assert.Nil(t, view)
	})
}

func TestListByOwner(t *testing.T) {
	t.Parallel()

	page := models.DefaultPage()

	t.Run("splits bookings into last and next per item", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		items := []models.Item{
			{ID: 1, OwnerID: 1},
			{ID: 2, OwnerID: 1},
		}
		// start-ascending, as the store returns them
		bookings := []models.Booking{
			{ID: 10, ItemID: 1, BookerID: 2, Start: fixedNow.Add(-72 * time.Hour)},
			{ID: 11, ItemID: 1, BookerID: 3, Start: fixedNow.Add(-24 * time.Hour)},
			{ID: 12, ItemID: 1, BookerID: 2, Start: fixedNow.Add(24 * time.Hour)},
			{ID: 13, ItemID: 1, BookerID: 4, Start: fixedNow.Add(48 * time.Hour)},
			{ID: 14, ItemID: 2, BookerID: 5, Start: fixedNow.Add(12 * time.Hour)},
		}
		comments := []models.Comment{
			{ID: 1, ItemID: 2, Text: "sharp blade"},
		}

		s.users.On("UserExists", mock.Anything, int64(1)).Return(true, nil)
		s.items.On("ItemsByOwner", mock.Anything, int64(1), page).Return(items, nil)
		s.bookings.On("ApprovedByItems", mock.Anything, []int64{1, 2}).Return(bookings, nil)
		s.comments.On("CommentsByItems", mock.Anything, []int64{1, 2}).Return(comments, nil)

		views, err := s.service().ListByOwner(context.Background(), 1, page)
		require.NoError(t, err)
		require.Len(t, views, 2)

		first := views[0]
		require.NotNil(t, first.LastBooking)
		assert.Equal(t, int64(11), first.LastBooking.ID)
		require.NotNil(t, first.NextBooking)
		assert.Equal(t, int64(12), first.NextBooking.ID)
		assert.Empty(t, first.Comments)

		second := views[1]
		assert.Nil(t, second.LastBooking)
		require.NotNil(t, second.NextBooking)
		assert.Equal(t, int64(14), second.NextBooking.ID)
		require.Len(t, second.Comments, 1)
		assert.Equal(t, "sharp blade", second.Comments[0].Text)
	})

	t.Run("no items means no batch queries", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.users.On("UserExists", mock.Anything, int64(1)).Return(true, nil)
		s.items.On("ItemsByOwner", mock.Anything, int64(1), page).Return([]models.Item{}, nil)

		views, err := s.service().ListByOwner(context.Background(), 1, page)
		require.NoError(t, err)
		assert.Empty(t, views)
		s.bookings.AssertNotCalled(t, "ApprovedByItems", mock.Anything, mock.Anything)
		s.comments.AssertNotCalled(t, "CommentsByItems", mock.Anything, mock.Anything)
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	page := models.DefaultPage()

	t.Run("blank text short-circuits", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.users.On("UserExists", mock.Anything, int64(1)).Return(true, nil)

		views, err := s.service().Search(context.Background(), 1, "   ", page)
		require.NoError(t, err)
		assert.Empty(t, views)
		s.items.AssertNotCalled(t, "SearchItems", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("matches carry comments but no booking summaries", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		found := []models.Item{{ID: 1, Name: "drill", Available: true}}
		comments := []models.Comment{{ID: 1, ItemID: 1, Text: "works well"}}

		s.users.On("UserExists", mock.Anything, int64(2)).Return(true, nil)
		s.items.On("SearchItems", mock.Anything, "drill", page).Return(found, nil)
		s.comments.On("CommentsByItems", mock.Anything, []int64{1}).Return(comments, nil)

		views, err := s.service().Search(context.Background(), 2, "drill", page)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Nil(t, views[0].LastBooking)
		assert.Nil(t, views[0].NextBooking)
		require.Len(t, views[0].Comments, 1)
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("applies non-blank fields only", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.items.On("ItemByID", mock.Anything, int64(1)).
			Return(&models.Item{ID: 1, Name: "drill", Description: "cordless", OwnerID: 1, Available: true}, nil)
		s.items.On("UpdateItem", mock.Anything, mock.MatchedBy(func(it *models.Item) bool {
			return it.Name == "hammer drill" && it.Description == "cordless" && !it.Available
		})).Return(nil)

		got, err := s.service().Update(context.Background(), 1, 1, Patch{
			Name:        strPtr("hammer drill"),
			Description: strPtr("  "),
			Available:   boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "hammer drill", got.Name)
		assert.Equal(t, "cordless", got.Description)
		assert.False(t, got.Available)
	})

	t.Run("only the owner may update", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.items.On("ItemByID", mock.Anything, int64(1)).
			Return(&models.Item{ID: 1, OwnerID: 1}, nil)

		got, err := s.service().Update(context.Background(), 2, 1, Patch{Name: strPtr("x")})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Contains(t, err.Error(), "item 1 does not belong to user 2")
		assert.Nil(t, got)
		s.items.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})
}

func TestPostComment(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.bookings.On("HasFinishedBooking", mock.Anything, int64(2), int64(1), fixedNow).Return(true, nil)
		s.users.On("UserByID", mock.Anything, int64(2)).Return(&models.User{ID: 2, Name: "alice"}, nil)
		s.items.On("ItemByID", mock.Anything, int64(1)).Return(&models.Item{ID: 1, OwnerID: 1}, nil)
		s.comments.On("SaveComment", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.Text == "great drill" && c.AuthorName == "alice" && c.Created.Equal(fixedNow)
		})).Return(int64(1), nil)

		got, err := s.service().PostComment(context.Background(), 2, 1, "great drill")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "alice", got.AuthorName)
	})

	t.Run("no finished booking", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.bookings.On("HasFinishedBooking", mock.Anything, int64(2), int64(1), fixedNow).Return(false, nil)

		got, err := s.service().PostComment(context.Background(), 2, 1, "never used it")
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNotAvailable)
		assert.Contains(t, err.Error(), "user 2 has no completed booking of item 1")
		assert.Nil(t, got)
		s.comments.AssertNotCalled(t, "SaveComment", mock.Anything, mock.Anything)
	})

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.bookings.On("HasFinishedBooking", mock.Anything, int64(9), int64(1), fixedNow).Return(true, nil)
		s.users.On("UserByID", mock.Anything, int64(9)).Return(nil, storage.ErrUserNotFound)

		got, err := s.service().PostComment(context.Background(), 9, 1, "hello")
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Contains(t, err.Error(), "there's no user with id 9")
		assert.Nil(t, got)
	})
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("assigns owner and id", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.users.On("UserExists", mock.Anything, int64(1)).Return(true, nil)
		s.items.On("SaveItem", mock.Anything, mock.MatchedBy(func(it *models.Item) bool {
			return it.OwnerID == 1 && it.Name == "drill"
		})).Return(int64(1), nil)

		got, err := s.service().Create(context.Background(), 1, models.Item{Name: "drill", Available: true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, int64(1), got.OwnerID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()

		s := newStores(t)

		s.users.On("UserExists", mock.Anything, int64(8)).Return(false, nil)

		got, err := s.service().Create(context.Background(), 8, models.Item{Name: "drill"})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Nil(t, got)
	})
}
