package getUserBookings

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

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	ListByBooker(ctx context.Context, bookerID int64, state models.BookingState, page models.Page) ([]models.Booking, error)
}

func New(log *slog.Logger, booking BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getUserBookings.New"

		log = log.With(slog.String("op", op))

		bookerID, err := request.UserID(r)
		if err != nil {
			log.Error("invalid user header", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		stateStr := r.URL.Query().Get("state")
		if stateStr == "" {
			stateStr = string(models.StateAll)
		}

		state, err := models.ParseBookingState(stateStr)
		if err != nil {
			log.Error("invalid state parameter", sl.Err(err))
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

		log = log.With(
			slog.Int64("booker_id", bookerID),
			slog.String("state", string(state)),
		)

		bookings, err := booking.ListByBooker(r.Context(), bookerID, state, page)
		if err != nil {
			log.Error("failed to list bookings", sl.Err(err))
			response.ServiceError(w, r, err, "failed to list bookings")
			return
		}

		log.Info("bookings listed", slog.Int("count", len(bookings)))

		responseOK(w, r, bookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
