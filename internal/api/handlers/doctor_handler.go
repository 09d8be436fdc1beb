package handlers

import (
	"context"
	"net/http"

	"github.com/swiftmedhelp/backend/internal/application/services"
	"github.com/swiftmedhelp/backend/internal/domain/repositories"
	"github.com/swiftmedhelp/backend/internal/infrastructure/observability"
)

// DoctorSearchService defines the search operations used by the handler
type DoctorSearchService interface {
	SearchDoctors(ctx context.Context, filter repositories.DoctorFilter) ([]services.DoctorResult, error)
}

// DoctorHandler handles doctor-related HTTP requests
type DoctorHandler struct {
	search     DoctorSearchService
	doctorRepo repositories.DoctorRepository
	metrics    *observability.Metrics
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(search DoctorSearchService, doctorRepo repositories.DoctorRepository, metrics *observability.Metrics) *DoctorHandler {
	return &DoctorHandler{
		search:     search,
		doctorRepo: doctorRepo,
		metrics:    metrics,
	}
}

// ListDoctors handles GET /api/doctors
//
// Query parameters: search, specialization, hospital_id, min_price,
// max_price, min_rating, available_only, consultation_type, sort_by.
// Every parameter is optional; an empty result set is a valid response.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repositories.DoctorFilter{
		Query:              q.Get("search"),
		Specialization:     q.Get("specialization"),
		HospitalID:         q.Get("hospital_id"),
		MinPrice:           parseIntOrZero(q.Get("min_price")),
		MaxPrice:           parseIntOrZero(q.Get("max_price")),
		MinRating:          parseFloatOrZero(q.Get("min_rating")),
		AvailableOnly:      q.Get("available_only") == "true",
		ConsultationTypeID: q.Get("consultation_type"),
		SortBy:             repositories.SortKey(q.Get("sort_by")),
	}

	results, err := h.search.SearchDoctors(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	observability.RecordSearch(r.Context(), h.metrics, "doctors", len(results))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"doctors": results,
		"count":   len(results),
	})
}

// GetDoctor handles GET /api/doctors/{id}
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := r.PathValue("id")
	if doctorID == "" {
		respondWithError(w, http.StatusBadRequest, "doctor ID is required")
		return
	}

	doctor, err := h.doctorRepo.GetByID(r.Context(), doctorID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, doctor)
}
