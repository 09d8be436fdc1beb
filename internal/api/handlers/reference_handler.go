package handlers

import (
	"net/http"

	"github.com/swiftmedhelp/backend/internal/domain/repositories"
)

// ReferenceHandler serves the fixed enumerations backing the filter
// widgets: cities, specializations, consultation types, departments,
// services and segregation types.
type ReferenceHandler struct {
	referenceRepo        repositories.ReferenceRepository
	departmentRepo       repositories.DepartmentRepository
	consultationTypeRepo repositories.ConsultationTypeRepository
	maxConsultationFee   int
}

// NewReferenceHandler creates a new reference data handler.
// maxConsultationFee is the ceiling the price filter widget offers.
func NewReferenceHandler(
	referenceRepo repositories.ReferenceRepository,
	departmentRepo repositories.DepartmentRepository,
	consultationTypeRepo repositories.ConsultationTypeRepository,
	maxConsultationFee int,
) *ReferenceHandler {
	return &ReferenceHandler{
		referenceRepo:        referenceRepo,
		departmentRepo:       departmentRepo,
		consultationTypeRepo: consultationTypeRepo,
		maxConsultationFee:   maxConsultationFee,
	}
}

// ListCities handles GET /api/cities
func (h *ReferenceHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.referenceRepo.Cities(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"cities": cities})
}

// ListSpecializations handles GET /api/specializations
func (h *ReferenceHandler) ListSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.referenceRepo.Specializations(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"specializations": specializations})
}

// ListServices handles GET /api/services
func (h *ReferenceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.referenceRepo.Services(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"services": services})
}

// ListSegregationTypes handles GET /api/segregation-types
func (h *ReferenceHandler) ListSegregationTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.referenceRepo.SegregationTypes(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"segregation_types": types})
}

// ListConsultationTypes handles GET /api/consultation-types
func (h *ReferenceHandler) ListConsultationTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.consultationTypeRepo.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"consultation_types":   types,
		"max_consultation_fee": h.maxConsultationFee,
	})
}

// ListDepartments handles GET /api/departments
func (h *ReferenceHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentRepo.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"departments": departments,
		"count":       len(departments),
	})
}

// GetDepartment handles GET /api/departments/{id}
func (h *ReferenceHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := r.PathValue("id")
	if departmentID == "" {
		respondWithError(w, http.StatusBadRequest, "department ID is required")
		return
	}

	department, err := h.departmentRepo.GetByID(r.Context(), departmentID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, department)
}
