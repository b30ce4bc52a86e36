package getBooking

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

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	GetByID(ctx context.Context, userID, bookingID int64) (*models.Booking, error)
}

func New(log *slog.Logger, booking BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		userID, err := request.UserID(r)
		if err != nil {
			log.Error("invalid user header", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		bookingIDStr := chi.URLParam(r, "bookingId")
		bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(
			slog.Int64("user_id", userID),
			slog.Int64("booking_id", bookingID),
		)

		found, err := booking.GetByID(r.Context(), userID, bookingID)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))
			response.ServiceError(w, r, err, "failed to get booking")
			return
		}

		log.Info("booking received")

		responseOK(w, r, found)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
