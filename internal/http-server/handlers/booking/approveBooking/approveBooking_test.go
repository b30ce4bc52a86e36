package approveBooking

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stuffSharing/internal/http-server/handlers/booking/approveBooking/mocks"
	"stuffSharing/internal/lib/api/request"
	"stuffSharing/internal/lib/logger/handlers/slogdiscard"
	"stuffSharing/internal/models"
	"stuffSharing/internal/service"
)

func TestApproveBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userHeader     string
		bookingID      string
		query          string
		mockSetup      func(m *mocks.BookingApprover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "Approve",
			userHeader: "1",
			bookingID:  "1",
			query:      "?approved=true",
			mockSetup: func(m *mocks.BookingApprover) {
				m.On("SetApproval", mock.Anything, int64(1), int64(1), true).
					Return(&models.Booking{ID: 1, Status: models.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "Reject",
			userHeader: "1",
			bookingID:  "1",
			query:      "?approved=false",
			mockSetup: func(m *mocks.BookingApprover) {
				m.On("SetApproval", mock.Anything, int64(1), int64(1), false).
					Return(&models.Booking{ID: 1, Status: models.StatusRejected}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing user header",
			userHeader:     "",
			bookingID:      "1",
			query:          "?approved=true",
			mockSetup:      func(m *mocks.BookingApprover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"X-Sharer-User-Id header is required"}`,
		},
		{
			name:           "Invalid booking id",
			userHeader:     "1",
			bookingID:      "abc",
			query:          "?approved=true",
			mockSetup:      func(m *mocks.BookingApprover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id format"}`,
		},
		{
			name:           "Missing approved parameter",
			userHeader:     "1",
			bookingID:      "1",
			query:          "",
			mockSetup:      func(m *mocks.BookingApprover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"approved parameter is required"}`,
		},
		{
			name:       "Already resolved",
			userHeader: "1",
			bookingID:  "1",
			query:      "?approved=true",
			mockSetup: func(m *mocks.BookingApprover) {
				m.On("SetApproval", mock.Anything, int64(1), int64(1), true).
					Return(nil, service.NotAvailablef("cannot change status from APPROVED"))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"not available: cannot change status from APPROVED"}`,
		},
		{
			name:       "Not the owner",
			userHeader: "3",
			bookingID:  "1",
			query:      "?approved=true",
			mockSetup: func(m *mocks.BookingApprover) {
				m.On("SetApproval", mock.Anything, int64(3), int64(1), true).
					Return(nil, service.NotFoundf("booking item does not belong to this user"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"not found: booking item does not belong to this user"}`,
		},
		{
			name:       "Internal error",
			userHeader: "1",
			bookingID:  "1",
			query:      "?approved=true",
			mockSetup: func(m *mocks.BookingApprover) {
				m.On("SetApproval", mock.Anything, int64(1), int64(1), true).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to set approval"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockApprover := mocks.NewBookingApprover(t)
			tc.mockSetup(mockApprover)

			handler := New(logger, mockApprover)

			router := chi.NewRouter()
			router.Patch("/bookings/{bookingId}", handler)

			req, err := http.NewRequest(http.MethodPatch, "/bookings/"+tc.bookingID+tc.query, nil)
			require.NoError(t, err)
			if tc.userHeader != "" {
				req.Header.Set(request.HeaderUserID, tc.userHeader)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
