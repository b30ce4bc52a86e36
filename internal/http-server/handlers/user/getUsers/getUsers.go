package getUsers

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

type UsersResponse struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersLister
type UsersLister interface {
	Users(ctx context.Context, page models.Page) ([]models.User, error)
}

func New(log *slog.Logger, users UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getUsers.New"

		log = log.With(slog.String("op", op))

		page, err := request.Page(r)
		if err != nil {
			log.Error("invalid pagination", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		found, err := users.Users(r.Context(), page)
		if err != nil {
			log.Error("failed to list users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list users"))
			return
		}

		log.Info("users listed", slog.Int("count", len(found)))

		responseOK(w, r, found)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, users []models.User) {
	render.JSON(w, r, UsersResponse{
		Response: response.OK(),
		Users:    users,
	})
}
