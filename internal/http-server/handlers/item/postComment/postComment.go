package postComment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"stuffSharing/internal/lib/api/request"
	"stuffSharing/internal/lib/api/response"
	"stuffSharing/internal/lib/logger/sl"
	"stuffSharing/internal/models"
)

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type CommentResponse struct {
	response.Response
	Comment *models.Comment `json:"comment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentPoster
type CommentPoster interface {
	PostComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error)
}

func New(log *slog.Logger, item CommentPoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.postComment.New"

		log = log.With(slog.String("op", op))

		authorID, err := request.UserID(r)
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

		var req CommentRequest

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

		log = log.With(
			slog.Int64("author_id", authorID),
			slog.Int64("item_id", itemID),
		)

		comment, err := item.PostComment(r.Context(), authorID, itemID, req.Text)
		if err != nil {
			log.Error("failed to post comment", sl.Err(err))
			response.ServiceError(w, r, err, "failed to post comment")
			return
		}

		log.Info("comment posted", slog.Int64("comment_id", comment.ID))

		responseOK(w, r, comment)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, comment *models.Comment) {
	render.JSON(w, r, CommentResponse{
		Response: response.OK(),
		Comment:  comment,
	})
}
