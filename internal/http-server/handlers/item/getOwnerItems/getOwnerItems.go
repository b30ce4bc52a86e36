package getOwnerItems

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemLister
type ItemLister interface {
	ListByOwner(ctx context.Context, ownerID int64, page models.Page) ([]models.ItemView, error)
}

func New(log *slog.Logger, item ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.getOwnerItems.New"

		log = log.With(slog.String("op", op))

		ownerID, err := request.UserID(r)
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

		log = log.With(slog.Int64("owner_id", ownerID))

		views, err := item.ListByOwner(r.Context(), ownerID, page)
		if err != nil {
			log.Error("failed to list owner items", sl.Err(err))
			response.ServiceError(w, r, err, "failed to list owner items")
			return
		}

		log.Info("owner items listed", slog.Int("count", len(views)))

		responseOK(w, r, views)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, views []models.ItemView) {
	render.JSON(w, r, ItemsResponse{
		Response: response.OK(),
		Items:    views,
	})
}
