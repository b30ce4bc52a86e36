package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"stuffSharing/internal/lib/api/request"
	"stuffSharing/internal/lib/api/response"
	"stuffSharing/internal/lib/logger/sl"
	"stuffSharing/internal/models"
)

type BookingRequest struct {
	ItemID int64      `json:"itemId" validate:"required"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(ctx context.Context, bookerID, itemID int64, start, end *time.Time) (*models.Booking, error)
}

func New(log *slog.Logger, booking BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		bookerID, err := request.UserID(r)
		if err != nil {
			log.Error("invalid user header", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("booker_id", bookerID))

		var req BookingRequest

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

		created, err := booking.Create(r.Context(), bookerID, req.ItemID, req.Start, req.End)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))
			response.ServiceError(w, r, err, "failed to create booking")
			return
		}

		log.Info("booking created", slog.Int64("booking_id", created.ID))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
