// Package request holds the small parsing helpers shared by every handler:
// the caller identity header and the from/size pagination params.
package request

import (
	"errors"
	"net/http"
	"strconv"

	"stuffSharing/internal/models"
)

// HeaderUserID carries the id of the calling user on every request.
const HeaderUserID = "X-Sharer-User-Id"

var ErrNoUserHeader = errors.New("X-Sharer-User-Id header is required")

func UserID(r *http.Request) (int64, error) {
	raw := r.Header.Get(HeaderUserID)
	if raw == "" {
		return 0, ErrNoUserHeader
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid X-Sharer-User-Id header")
	}

	return id, nil
}

// Page reads from/size query params, defaulting to the first 20 entries.
func Page(r *http.Request) (models.Page, error) {
	page := models.DefaultPage()

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return models.Page{}, errors.New("invalid from parameter")
		}
		page.From = uint(from)
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || size == 0 {
			return models.Page{}, errors.New("invalid size parameter")
		}
		page.Size = uint(size)
	}

	return page, nil
}
