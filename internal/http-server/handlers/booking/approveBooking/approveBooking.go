package approveBooking

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingApprover
type BookingApprover interface {
	SetApproval(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error)
}

func New(log *slog.Logger, booking BookingApprover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.approveBooking.New"

		log = log.With(slog.String("op", op))

		ownerID, err := request.UserID(r)
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

		approvedStr := r.URL.Query().Get("approved")
		approved, err := strconv.ParseBool(approvedStr)
		if err != nil {
			log.Error("invalid approved parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("approved parameter is required"))
			return
		}

		log = log.With(
			slog.Int64("owner_id", ownerID),
			slog.Int64("booking_id", bookingID),
			slog.Bool("approved", approved),
		)

		resolved, err := booking.SetApproval(r.Context(), ownerID, bookingID, approved)
		if err != nil {
			log.Error("failed to set approval", sl.Err(err))
			response.ServiceError(w, r, err, "failed to set approval")
			return
		}

		log.Info("booking resolved", slog.String("status", string(resolved.Status)))

		responseOK(w, r, resolved)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
