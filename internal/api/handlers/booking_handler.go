package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/swiftmedhelp/backend/internal/api/middleware"
	"github.com/swiftmedhelp/backend/internal/application/services"
	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/infrastructure/observability"
)

// BookingService confirms an appointment and parks the draft for the
// OP card page.
type BookingService interface {
	Book(ctx context.Context, sessionID string, req services.BookingRequest) (*services.BookingConfirmation, error)
}

// OPCardService renders the printable OP card from the parked draft.
type OPCardService interface {
	Render(ctx context.Context, sessionID string) (*entities.OPCard, bool, error)
}

// BookingHandler handles appointment booking and OP card requests
type BookingHandler struct {
	bookingService BookingService
	opCardService  OPCardService
	metrics        *observability.Metrics
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService BookingService, opCardService OPCardService, metrics *observability.Metrics) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		opCardService:  opCardService,
		metrics:        metrics,
	}
}

// BookAppointment handles POST /api/appointments
func (h *BookingHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req services.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		respondWithError(w, http.StatusInternalServerError, "session not established")
		return
	}

	confirmation, err := h.bookingService.Book(r.Context(), sessionID, req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	observability.RecordBooking(r.Context(), h.metrics)

	respondWithJSON(w, http.StatusCreated, confirmation)
}

// GetOPCard handles GET /api/op-card. When no appointment has been
// booked in this session the client is sent back to the home page
// instead of receiving an error.
func (h *BookingHandler) GetOPCard(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	card, ok, err := h.opCardService.Render(r.Context(), sessionID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	respondWithJSON(w, http.StatusOK, card)
}
