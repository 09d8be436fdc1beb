package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/repositories"
	"github.com/swiftmedhelp/backend/internal/infrastructure/observability"
)

// HospitalSearchService defines the search operations used by the handler
type HospitalSearchService interface {
	SearchHospitals(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error)
}

// HospitalHandler handles hospital-related HTTP requests
type HospitalHandler struct {
	search         HospitalSearchService
	hospitalRepo   repositories.HospitalRepository
	departmentRepo repositories.DepartmentRepository
	metrics        *observability.Metrics
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(
	search HospitalSearchService,
	hospitalRepo repositories.HospitalRepository,
	departmentRepo repositories.DepartmentRepository,
	metrics *observability.Metrics,
) *HospitalHandler {
	return &HospitalHandler{
		search:         search,
		hospitalRepo:   hospitalRepo,
		departmentRepo: departmentRepo,
		metrics:        metrics,
	}
}

// ListHospitals handles GET /api/hospitals
//
// Query parameters seed the filter set: city, search, specialization,
// min_rating, services, segregation. Absent parameters leave their
// predicate inactive; unparseable numbers do the same. The engine never
// rejects a filter input.
func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repositories.HospitalFilter{
		City:           q.Get("city"),
		Query:          q.Get("search"),
		Specialization: q.Get("specialization"),
		MinRating:      parseFloatOrZero(q.Get("min_rating")),
		ServiceIDs:     splitCSV(q.Get("services")),
		SegregationIDs: splitCSV(q.Get("segregation")),
	}

	hospitals, err := h.search.SearchHospitals(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	observability.RecordSearch(r.Context(), h.metrics, "hospitals", len(hospitals))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospital handles GET /api/hospitals/{id}
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := r.PathValue("id")
	if hospitalID == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	hospital, err := h.hospitalRepo.GetByID(r.Context(), hospitalID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, hospital)
}

// GetHospitalDepartments handles GET /api/hospitals/{id}/departments
func (h *HospitalHandler) GetHospitalDepartments(w http.ResponseWriter, r *http.Request) {
	hospitalID := r.PathValue("id")
	if hospitalID == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	hospital, err := h.hospitalRepo.GetByID(r.Context(), hospitalID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	departments := make([]*entities.Department, 0, len(hospital.DepartmentIDs))
	for _, deptID := range hospital.DepartmentIDs {
		dept, err := h.departmentRepo.GetByID(r.Context(), deptID)
		if err != nil {
			// A dangling reference in the fixture is a data bug; skip the
			// entry rather than failing the whole listing.
			continue
		}
		departments = append(departments, dept)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"departments": departments,
		"count":       len(departments),
	})
}

// parseFloatOrZero parses a float query parameter, treating absent or
// malformed values as the inactive-filter zero value.
func parseFloatOrZero(value string) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseIntOrZero parses an int query parameter, treating absent or
// malformed values as the inactive-filter zero value.
func parseIntOrZero(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// splitCSV splits a comma-separated query parameter into its non-empty parts
func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
