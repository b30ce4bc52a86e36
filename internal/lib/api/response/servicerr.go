package response

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"stuffSharing/internal/service"
)

// ServiceError renders a business-layer error with its mapped HTTP status.
// Anything outside the taxonomy becomes a 500 with the fallback message.
func ServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, Error(err.Error()))
	case errors.Is(err, service.ErrNotAvailable):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, Error(err.Error()))
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, Error(fallback))
	}
}
