package models

type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Available   bool   `json:"available" db:"available"`
	OwnerID     int64  `json:"-" db:"owner_id"`
	RequestID   *int64 `json:"requestId,omitempty" db:"request_id"`
}

// ItemView is an item enriched with comments and, for the owner only, the
// nearest approved bookings around "now". lastBooking/nextBooking stay null
// for everyone else.
type ItemView struct {
	Item
	LastBooking *LastNextBooking `json:"lastBooking"`
	NextBooking *LastNextBooking `json:"nextBooking"`
	Comments    []Comment        `json:"comments"`
}

// NewItemView computes every derived field up front; the view is not
// mutated afterwards.
func NewItemView(item Item, comments []Comment, last, next *LastNextBooking) ItemView {
	if comments == nil {
		comments = []Comment{}
	}
	return ItemView{
		Item:        item,
		LastBooking: last,
		NextBooking: next,
		Comments:    comments,
	}
}
