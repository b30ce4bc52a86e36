package createItem

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"stuffSharing/internal/lib/api/request"
	"stuffSharing/internal/lib/api/response"
	"stuffSharing/internal/lib/logger/sl"
	"stuffSharing/internal/models"
)

type ItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type ItemResponse struct {
	response.Response
	Item *models.Item `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemCreator
type ItemCreator interface {
	Create(ctx context.Context, ownerID int64, item models.Item) (*models.Item, error)
}

func New(log *slog.Logger, item ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.createItem.New"

		log = log.With(slog.String("op", op))

		ownerID, err := request.UserID(r)
		if err != nil {
			log.Error("invalid user header", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		created, err := item.Create(r.Context(), ownerID, models.Item{
			Name:        req.Name,
			Description: req.Description,
			Available:   *req.Available,
			RequestID:   req.RequestID,
		})
		if err != nil {
			log.Error("failed to create item", sl.Err(err))
			response.ServiceError(w, r, err, "failed to create item")
			return
		}

		log.Info("item created", slog.Int64("item_id", created.ID))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, item *models.Item) {
	render.JSON(w, r, ItemResponse{
		Response: response.OK(),
		Item:     item,
	})
}
