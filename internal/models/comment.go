package models

import "time"

type Comment struct {
	ID         int64     `json:"id" db:"id"`
	Text       string    `json:"text" db:"text"`
	ItemID     int64     `json:"-" db:"item_id"`
	AuthorID   int64     `json:"-" db:"author_id"`
	AuthorName string    `json:"authorName" db:"author_name"`
	Created    time.Time `json:"created" db:"created"`
}
