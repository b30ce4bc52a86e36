// Package item combines the item catalog with bookings and comments:
// single and batch item views enriched with last/next approved bookings,
// text search, item CRUD and booking-gated comments.
package item

import (
	"context"
	"errors"
	"strings"
	"time"

	"stuffSharing/internal/models"
	"stuffSharing/internal/service"
	"stuffSharing/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserStore
type UserStore interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	UserByID(ctx context.Context, userID int64) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemStore
type ItemStore interface {
	SaveItem(ctx context.Context, item *models.Item) (int64, error)
	ItemByID(ctx context.Context, itemID int64) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	ItemsByOwner(ctx context.Context, ownerID int64, page models.Page) ([]models.Item, error)
	SearchItems(ctx context.Context, text string, page models.Page) ([]models.Item, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStore
type BookingStore interface {
	LastApprovedBefore(ctx context.Context, itemID int64, now time.Time) (*models.LastNextBooking, error)
	NextApprovedAfter(ctx context.Context, itemID int64, now time.Time) (*models.LastNextBooking, error)
	ApprovedByItems(ctx context.Context, itemIDs []int64) ([]models.Booking, error)
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentStore
type CommentStore interface {
	SaveComment(ctx context.Context, comment *models.Comment) (int64, error)
	CommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error)
	CommentsByItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error)
}

// Patch carries the optional fields of an item update; nil fields stay
// untouched.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service struct {
	items    ItemStore
	users    UserStore
	bookings BookingStore
	comments CommentStore
	now      func() time.Time
}

func New(items ItemStore, users UserStore, bookings BookingStore, comments CommentStore, now func() time.Time) *Service {
	return &Service{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		now:      now,
	}
}

// GetByID returns the item enriched with comments. Last/next approved
// booking summaries are attached only when the viewer owns the item.
func (s *Service) GetByID(ctx context.Context, userID, itemID int64) (*models.ItemView, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.CommentsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var last, next *models.LastNextBooking
	if item.OwnerID == userID {
		now := s.now()

		if last, err = s.bookings.LastApprovedBefore(ctx, itemID, now); err != nil {
			return nil, err
		}
		if next, err = s.bookings.NextApprovedAfter(ctx, itemID, now); err != nil {
			return nil, err
		}
	}

	view := models.NewItemView(*item, comments, last, next)

	return &view, nil
}

// ListByOwner returns the owner's items with comments and last/next
// bookings, grouping both by item id in a single pass instead of querying
// per item.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64, page models.Page) ([]models.ItemView, error) {
	if err := s.checkUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.ItemsByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []models.ItemView{}, nil
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	bookings, err := s.bookings.ApprovedByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.CommentsByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	commentsByItem := make(map[int64][]models.Comment)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	now := s.now()
	lastByItem := make(map[int64]*models.LastNextBooking)
	nextByItem := make(map[int64]*models.LastNextBooking)
	// bookings arrive ordered by start ascending, so every pass keeps the
	// latest start before now and the earliest start after now
	for _, b := range bookings {
		summary := &models.LastNextBooking{ID: b.ID, BookerID: b.BookerID}
		if b.Start.Before(now) {
			lastByItem[b.ItemID] = summary
		} else if b.Start.After(now) {
			if _, ok := nextByItem[b.ItemID]; !ok {
				nextByItem[b.ItemID] = summary
			}
		}
	}

	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, models.NewItemView(
			item,
			commentsByItem[item.ID],
			lastByItem[item.ID],
			nextByItem[item.ID],
		))
	}

	return views, nil
}

// Search matches available items by text in name or description. A blank
// query returns an empty result. Comments are attached, booking summaries
// never are.
func (s *Service) Search(ctx context.Context, userID int64, text string, page models.Page) ([]models.ItemView, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return []models.ItemView{}, nil
	}

	items, err := s.items.SearchItems(ctx, text, page)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []models.ItemView{}, nil
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	comments, err := s.comments.CommentsByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	commentsByItem := make(map[int64][]models.Comment)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, models.NewItemView(item, commentsByItem[item.ID], nil, nil))
	}

	return views, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, item models.Item) (*models.Item, error) {
	if err := s.checkUser(ctx, ownerID); err != nil {
		return nil, err
	}

	item.OwnerID = ownerID

	id, err := s.items.SaveItem(ctx, &item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	return &item, nil
}

// Update applies a partial item update; only the owner may update, blank
// name/description values are ignored.
func (s *Service) Update(ctx context.Context, ownerID, itemID int64, patch Patch) (*models.Item, error) {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, service.NotFoundf("item %d does not belong to user %d", itemID, ownerID)
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		item.Name = *patch.Name
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) != "" {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err = s.items.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// PostComment saves feedback on an item. Only a booker with a finished
// approved booking of the item may comment.
func (s *Service) PostComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	now := s.now()

	allowed, err := s.bookings.HasFinishedBooking(ctx, authorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, service.NotAvailablef("user %d has no completed booking of item %d", authorID, itemID)
	}

	author, err := s.users.UserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, service.NotFoundf("there's no user with id %d", authorID)
		}
		return nil, err
	}
	if _, err = s.getItem(ctx, itemID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Created:    now,
	}

	id, err := s.comments.SaveComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = id

	return comment, nil
}

func (s *Service) checkUser(ctx context.Context, userID int64) error {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return service.NotFoundf("there's no user with id %d", userID)
	}

	return nil
}

func (s *Service) getItem(ctx context.Context, itemID int64) (*models.Item, error) {
	item, err := s.items.ItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return nil, service.NotFoundf("there's no item with id %d", itemID)
		}
		return nil, err
	}

	return item, nil
}
