package searchItems

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"stuffSharing/internal/lib/api/request"
	"stuffSharing/internal/lib/api/response"
	"stuffSharing/internal/lib/logger/sl"
	"stuffSharing/internal/models"
)

type ItemsResponse struct {
	response.Response
	Items []models.ItemView `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemSearcher
type ItemSearcher interface {
	Search(ctx context.Context, userID int64, text string, page models.Page) ([]models.ItemView, error)
}

func New(log *slog.Logger, item ItemSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.searchItems.New"

		log = log.With(slog.String("op", op))

		userID, err := request.UserID(r)
		if err != nil {
			log.Error("invalid user header", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		page, err := request.Page(r)
		if err != nil {
			log.Error("invalid pagination", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		text := r.URL.Query().Get("text")

		log = log.With(
			slog.Int64("user_id", userID),
			slog.String("text", text),
		)

		views, err := item.Search(r.Context(), userID, text, page)
		if err != nil {
			log.Error("failed to search items", sl.Err(err))
			response.ServiceError(w, r, err, "failed to search items")
			return
		}

		log.Info("items found", slog.Int("count", len(views)))

		responseOK(w, r, views)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, views []models.ItemView) {
	render.JSON(w, r, ItemsResponse{
		Response: response.OK(),
		Items:    views,
	})
}
