package services

import (
	"context"
	"sort"
	"strings"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/repositories"
)

// baseConsultationType backs searches where no consultation type is
// selected. Multiplier 1.0 keeps the base fee unchanged.
var baseConsultationType = entities.ConsultationType{
	ID:              "in-person",
	Name:            "In-Person",
	PriceMultiplier: 1.0,
}

// DoctorResult pairs a doctor with the fee adjusted for the selected
// consultation type. The adjusted fee is computed exactly once per result;
// it is the value both filtered on and displayed.
type DoctorResult struct {
	Doctor      *entities.Doctor `json:"doctor"`
	AdjustedFee int              `json:"adjusted_fee"`
}

// SearchService applies the active filter predicate set to the catalog
// and orders the surviving records. Every search is a full synchronous
// recomputation over the complete catalog; there is no incremental state.
type SearchService struct {
	doctorRepo           repositories.DoctorRepository
	hospitalRepo         repositories.HospitalRepository
	departmentRepo       repositories.DepartmentRepository
	consultationTypeRepo repositories.ConsultationTypeRepository
}

// NewSearchService creates a new search service
func NewSearchService(
	doctorRepo repositories.DoctorRepository,
	hospitalRepo repositories.HospitalRepository,
	departmentRepo repositories.DepartmentRepository,
	consultationTypeRepo repositories.ConsultationTypeRepository,
) *SearchService {
	return &SearchService{
		doctorRepo:           doctorRepo,
		hospitalRepo:         hospitalRepo,
		departmentRepo:       departmentRepo,
		consultationTypeRepo: consultationTypeRepo,
	}
}

// SearchDoctors runs the doctor filter pipeline. An empty result is a
// valid outcome, returned as an empty slice, never as an error.
func (s *SearchService) SearchDoctors(ctx context.Context, filter repositories.DoctorFilter) ([]DoctorResult, error) {
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ct := baseConsultationType
	if filter.ConsultationTypeID != "" {
		// Unknown IDs fall back to the base price; the type selector is a
		// fixed widget, so this only happens on stale links.
		if found, err := s.consultationTypeRepo.GetByID(ctx, filter.ConsultationTypeID); err == nil {
			ct = *found
		}
	}

	return ComputeDoctorResults(doctors, ct, filter), nil
}

// ComputeDoctorResults is the pure filter-then-sort pipeline over the
// doctor catalog. It holds no state: identical inputs always yield an
// identical output sequence.
func ComputeDoctorResults(doctors []*entities.Doctor, ct entities.ConsultationType, filter repositories.DoctorFilter) []DoctorResult {
	results := make([]DoctorResult, 0, len(doctors))
	for _, d := range doctors {
		fee := ct.AdjustedFee(d.ConsultationFee)
		if matchesDoctor(d, fee, filter) {
			results = append(results, DoctorResult{Doctor: d, AdjustedFee: fee})
		}
	}

	sortDoctorResults(results, filter.SortBy)
	return results
}

// matchesDoctor is the predicate AND-chain: every active filter must
// accept the record. Inactive filters are always-true.
func matchesDoctor(d *entities.Doctor, adjustedFee int, f repositories.DoctorFilter) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		if !containsFold(q, d.Name, d.Specialization, d.Qualification) {
			return false
		}
	}
	if isSet(f.Specialization) && d.Specialization != f.Specialization {
		return false
	}
	if isSet(f.HospitalID) && d.HospitalID != f.HospitalID {
		return false
	}
	if adjustedFee < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && adjustedFee > f.MaxPrice {
		return false
	}
	if d.Rating < f.MinRating {
		return false
	}
	if f.AvailableOnly && d.Availability != entities.AvailabilityAvailable {
		return false
	}
	return true
}

// sortDoctorResults orders results by the selected key. The sort is
// stable: records with equal keys keep their catalog order.
func sortDoctorResults(results []DoctorResult, key repositories.SortKey) {
	switch key {
	case repositories.SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Doctor.Rating > results[j].Doctor.Rating
		})
	case repositories.SortByPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].AdjustedFee < results[j].AdjustedFee
		})
	case repositories.SortByPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].AdjustedFee > results[j].AdjustedFee
		})
	case repositories.SortByExperience:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Doctor.Experience > results[j].Doctor.Experience
		})
	default:
		// No sort key: catalog order.
	}
}

// SearchHospitals runs the hospital filter pipeline
func (s *SearchService) SearchHospitals(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error) {
	hospitals, err := s.hospitalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// The specialization filter matches hospitals through department
	// membership; resolve the department name to its identity up front.
	var specializationDeptID string
	if isSet(filter.Specialization) {
		departments, err := s.departmentRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, dept := range departments {
			if strings.EqualFold(dept.Name, filter.Specialization) {
				specializationDeptID = dept.ID
				break
			}
		}
		if specializationDeptID == "" {
			// Specialization names are a fixed enumeration; an unknown one
			// matches no hospital.
			return []*entities.Hospital{}, nil
		}
	}

	return ComputeHospitalResults(hospitals, specializationDeptID, filter), nil
}

// ComputeHospitalResults is the pure filter pipeline over the hospital
// catalog. Hospitals keep catalog order; there is no hospital sort key.
func ComputeHospitalResults(hospitals []*entities.Hospital, specializationDeptID string, filter repositories.HospitalFilter) []*entities.Hospital {
	results := make([]*entities.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if matchesHospital(h, specializationDeptID, filter) {
			results = append(results, h)
		}
	}
	return results
}

func matchesHospital(h *entities.Hospital, specializationDeptID string, f repositories.HospitalFilter) bool {
	if isSet(f.City) && h.City != f.City {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		fields := append([]string{h.Name, h.Address}, h.Facilities...)
		if !containsFold(q, fields...) {
			return false
		}
	}
	if specializationDeptID != "" && !containsString(h.DepartmentIDs, specializationDeptID) {
		return false
	}
	if h.Rating < f.MinRating {
		return false
	}
	for _, id := range f.ServiceIDs {
		if !containsString(h.ServiceIDs, id) {
			return false
		}
	}
	for _, id := range f.SegregationIDs {
		if !containsString(h.SegregationIDs, id) {
			return false
		}
	}
	return true
}

// isSet reports whether a select-widget value is an active filter. The
// empty string and the "all" sentinel both mean "no restriction".
func isSet(value string) bool {
	return value != "" && value != repositories.FilterAll
}

// containsFold reports whether any field contains the query,
// case-insensitively.
func containsFold(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
