package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/swiftmedhelp/backend/internal/api/handlers"
	"github.com/swiftmedhelp/backend/internal/api/middleware"
	"github.com/swiftmedhelp/backend/internal/application/services"
	"github.com/swiftmedhelp/backend/internal/domain/entities"
	apperrors "github.com/swiftmedhelp/backend/pkg/errors"
)

// MockBookingService defines the mock booking service
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Book(ctx context.Context, sessionID string, req services.BookingRequest) (*services.BookingConfirmation, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.BookingConfirmation), args.Error(1)
}

// MockOPCardService defines the mock OP card service
type MockOPCardService struct {
	mock.Mock
}

func (m *MockOPCardService) Render(ctx context.Context, sessionID string) (*entities.OPCard, bool, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entities.OPCard), args.Bool(1), args.Error(2)
}

// withSession runs the handler behind the session middleware so the
// request context carries a session ID, the way it does in production.
func withSession(handlerFunc http.HandlerFunc) http.Handler {
	return middleware.SessionMiddleware("smh_session")(handlerFunc)
}

func TestBookingHandler_BookAppointment(t *testing.T) {
	t.Run("successfully books an appointment", func(t *testing.T) {
		mockBooking := new(MockBookingService)
		mockOPCard := new(MockOPCardService)
		handler := handlers.NewBookingHandler(mockBooking, mockOPCard, nil)

		payload := map[string]interface{}{
			"doctor_id":    "dr-rajesh-kumar",
			"patient_name": "Ramesh Gupta",
			"age":          42,
			"gender":       "Male",
			"phone":        "+91-9812345678",
			"date":         "2030-03-15",
		}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/appointments", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		mockBooking.On("Book", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(r services.BookingRequest) bool {
			return r.DoctorID == "dr-rajesh-kumar" && r.PatientName == "Ramesh Gupta"
		})).Return(&services.BookingConfirmation{
			Message:     "Appointment booked successfully!",
			Appointment: &entities.AppointmentDraft{DoctorName: "Dr. Rajesh Kumar"},
		}, nil)

		withSession(handler.BookAppointment).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockBooking.AssertExpectations(t)
	})

	t.Run("returns bad request for invalid payload", func(t *testing.T) {
		handler := handlers.NewBookingHandler(new(MockBookingService), new(MockOPCardService), nil)

		req := httptest.NewRequest("POST", "/api/appointments", bytes.NewBufferString("not-json"))
		w := httptest.NewRecorder()

		withSession(handler.BookAppointment).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns field errors for an invalid booking", func(t *testing.T) {
		mockBooking := new(MockBookingService)
		handler := handlers.NewBookingHandler(mockBooking, new(MockOPCardService), nil)

		mockBooking.On("Book", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.NewFieldValidationError(map[string]string{
				"date": "please select a date",
			}))

		body, _ := json.Marshal(map[string]interface{}{"doctor_id": "dr-rajesh-kumar"})
		req := httptest.NewRequest("POST", "/api/appointments", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		withSession(handler.BookAppointment).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		fields, ok := response["fields"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "please select a date", fields["date"])
	})

	t.Run("returns not found for an unknown doctor", func(t *testing.T) {
		mockBooking := new(MockBookingService)
		handler := handlers.NewBookingHandler(mockBooking, new(MockOPCardService), nil)

		mockBooking.On("Book", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.NewNotFoundError("doctor not found"))

		body, _ := json.Marshal(map[string]interface{}{"doctor_id": "dr-nobody"})
		req := httptest.NewRequest("POST", "/api/appointments", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		withSession(handler.BookAppointment).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookingHandler_GetOPCard(t *testing.T) {
	t.Run("redirects home when no booking is in flight", func(t *testing.T) {
		mockOPCard := new(MockOPCardService)
		handler := handlers.NewBookingHandler(new(MockBookingService), mockOPCard, nil)

		mockOPCard.On("Render", mock.Anything, mock.Anything).Return(nil, false, nil)

		req := httptest.NewRequest("GET", "/api/op-card", nil)
		w := httptest.NewRecorder()

		withSession(handler.GetOPCard).ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("renders the card when a booking exists", func(t *testing.T) {
		mockOPCard := new(MockOPCardService)
		handler := handlers.NewBookingHandler(new(MockBookingService), mockOPCard, nil)

		mockOPCard.On("Render", mock.Anything, mock.Anything).Return(&entities.OPCard{
			OPNumber: "OP99000000",
			Draft:    entities.AppointmentDraft{DoctorName: "Dr. Rajesh Kumar"},
		}, true, nil)

		req := httptest.NewRequest("GET", "/api/op-card", nil)
		w := httptest.NewRecorder()

		withSession(handler.GetOPCard).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var card entities.OPCard
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
		assert.Equal(t, "OP99000000", card.OPNumber)
	})
}
