package repositories

import (
	"context"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
)

// HospitalRepository defines the interface for hospital catalog lookups
type HospitalRepository interface {
	// GetByID retrieves a hospital by ID
	GetByID(ctx context.Context, id string) (*entities.Hospital, error)

	// List retrieves all hospitals in catalog order
	List(ctx context.Context) ([]*entities.Hospital, error)
}

// DoctorRepository defines the interface for doctor catalog lookups
type DoctorRepository interface {
	// GetByID retrieves a doctor by ID
	GetByID(ctx context.Context, id string) (*entities.Doctor, error)

	// List retrieves all doctors in catalog order
	List(ctx context.Context) ([]*entities.Doctor, error)
}

// DepartmentRepository defines the interface for department catalog lookups
type DepartmentRepository interface {
	// GetByID retrieves a department by ID
	GetByID(ctx context.Context, id string) (*entities.Department, error)

	// List retrieves all departments in catalog order
	List(ctx context.Context) ([]*entities.Department, error)
}

// ConsultationTypeRepository defines the interface for consultation type lookups
type ConsultationTypeRepository interface {
	// GetByID retrieves a consultation type by ID
	GetByID(ctx context.Context, id string) (*entities.ConsultationType, error)

	// List retrieves all consultation types in catalog order
	List(ctx context.Context) ([]*entities.ConsultationType, error)
}

// ReferenceRepository exposes the fixed enumerations backing the filter widgets
type ReferenceRepository interface {
	Cities(ctx context.Context) ([]string, error)
	Specializations(ctx context.Context) ([]string, error)
	Services(ctx context.Context) ([]*entities.Service, error)
	SegregationTypes(ctx context.Context) ([]*entities.SegregationType, error)
}

// SortKey selects the comparator for doctor search results
type SortKey string

const (
	SortByRating     SortKey = "rating"
	SortByPriceLow   SortKey = "price-low"
	SortByPriceHigh  SortKey = "price-high"
	SortByExperience SortKey = "experience"
)

// FilterAll is the sentinel meaning "no restriction" for select widgets.
// It must behave as an always-true predicate, never as "matches nothing".
const FilterAll = "all"

// DoctorFilter defines the active predicate set for a doctor search.
// Zero values mean the corresponding predicate is inactive.
type DoctorFilter struct {
	// Query matches case-insensitively against name, specialization and
	// qualification.
	Query          string
	Specialization string
	HospitalID     string

	// MinPrice/MaxPrice bound the adjusted consultation fee. MaxPrice <= 0
	// means no ceiling.
	MinPrice int
	MaxPrice int

	MinRating     float64
	AvailableOnly bool

	// ConsultationTypeID selects the fee multiplier; empty falls back to
	// the base price (multiplier 1.0).
	ConsultationTypeID string

	SortBy SortKey
}

// HospitalFilter defines the active predicate set for a hospital search
type HospitalFilter struct {
	City string
	// Query matches case-insensitively against name, address and facilities.
	Query          string
	Specialization string
	MinRating      float64

	// ServiceIDs and SegregationIDs are conjunctive: a hospital must offer
	// every listed entry to match.
	ServiceIDs     []string
	SegregationIDs []string
}
