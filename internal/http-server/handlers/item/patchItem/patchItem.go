package patchItem

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"stuffSharing/internal/lib/api/request"
	"stuffSharing/internal/lib/api/response"
	"stuffSharing/internal/lib/logger/sl"
	"stuffSharing/internal/models"
	"stuffSharing/internal/service/item"
)

type ItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type ItemResponse struct {
	response.Response
	Item *models.Item `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemUpdater
type ItemUpdater interface {
	Update(ctx context.Context, ownerID, itemID int64, patch item.Patch) (*models.Item, error)
}

func New(log *slog.Logger, items ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.patchItem.New"

		log = log.With(slog.String("op", op))

		ownerID, err := request.UserID(r)
		if err != nil {
			log.Error("invalid user header", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		itemIDStr := chi.URLParam(r, "itemId")
		itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
		if err != nil {
			log.Error("invalid item id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid item id format"))
			return
		}

		var req ItemRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log = log.With(
			slog.Int64("owner_id", ownerID),
			slog.Int64("item_id", itemID),
		)

		updated, err := items.Update(r.Context(), ownerID, itemID, item.Patch{
			Name:        req.Name,
			Description: req.Description,
			Available:   req.Available,
		})
		if err != nil {
			log.Error("failed to update item", sl.Err(err))
			response.ServiceError(w, r, err, "failed to update item")
			return
		}

		log.Info("item updated")

		responseOK(w, r, updated)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, item *models.Item) {
	render.JSON(w, r, ItemResponse{
		Response: response.OK(),
		Item:     item,
	})
}
