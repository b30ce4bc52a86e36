package getItem

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
)

type ItemResponse struct {
	response.Response
	Item *models.ItemView `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemGetter
type ItemGetter interface {
	GetByID(ctx context.Context, userID, itemID int64) (*models.ItemView, error)
}

func New(log *slog.Logger, item ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.getItem.New"

		log = log.With(slog.String("op", op))

		userID, err := request.UserID(r)
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

		log = log.With(
			slog.Int64("user_id", userID),
			slog.Int64("item_id", itemID),
		)

		view, err := item.GetByID(r.Context(), userID, itemID)
		if err != nil {
			log.Error("failed to get item", sl.Err(err))
			response.ServiceError(w, r, err, "failed to get item")
			return
		}

		log.Info("item received")

		responseOK(w, r, view)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, view *models.ItemView) {
	render.JSON(w, r, ItemResponse{
		Response: response.OK(),
		Item:     view,
	})
}
