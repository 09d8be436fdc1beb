package catalog

import (
	"context"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	apperrors "github.com/swiftmedhelp/backend/pkg/errors"
)

// HospitalAdapter implements HospitalRepository over the in-memory fixture
type HospitalAdapter struct {
	hospitals []*entities.Hospital
	byID      map[string]*entities.Hospital
}

// NewHospitalAdapter creates a new in-memory hospital adapter
func NewHospitalAdapter(fx Fixture) *HospitalAdapter {
	byID := make(map[string]*entities.Hospital, len(fx.Hospitals))
	for _, h := range fx.Hospitals {
		byID[h.ID] = h
	}
	return &HospitalAdapter{hospitals: fx.Hospitals, byID: byID}
}

// GetByID retrieves a hospital by ID
func (a *HospitalAdapter) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	h, ok := a.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("hospital not found")
	}
	return h, nil
}

// List retrieves all hospitals in catalog order
func (a *HospitalAdapter) List(ctx context.Context) ([]*entities.Hospital, error) {
	return a.hospitals, nil
}

// DoctorAdapter implements DoctorRepository over the in-memory fixture
type DoctorAdapter struct {
	doctors []*entities.Doctor
	byID    map[string]*entities.Doctor
}

// NewDoctorAdapter creates a new in-memory doctor adapter
func NewDoctorAdapter(fx Fixture) *DoctorAdapter {
	byID := make(map[string]*entities.Doctor, len(fx.Doctors))
	for _, d := range fx.Doctors {
		byID[d.ID] = d
	}
	return &DoctorAdapter{doctors: fx.Doctors, byID: byID}
}

// GetByID retrieves a doctor by ID
func (a *DoctorAdapter) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	d, ok := a.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("doctor not found")
	}
	return d, nil
}

// List retrieves all doctors in catalog order
func (a *DoctorAdapter) List(ctx context.Context) ([]*entities.Doctor, error) {
	return a.doctors, nil
}

// DepartmentAdapter implements DepartmentRepository over the in-memory fixture
type DepartmentAdapter struct {
	departments []*entities.Department
	byID        map[string]*entities.Department
}

// NewDepartmentAdapter creates a new in-memory department adapter
func NewDepartmentAdapter(fx Fixture) *DepartmentAdapter {
	byID := make(map[string]*entities.Department, len(fx.Departments))
	for _, d := range fx.Departments {
		byID[d.ID] = d
	}
	return &DepartmentAdapter{departments: fx.Departments, byID: byID}
}

// GetByID retrieves a department by ID
func (a *DepartmentAdapter) GetByID(ctx context.Context, id string) (*entities.Department, error) {
	d, ok := a.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("department not found")
	}
	return d, nil
}

// List retrieves all departments in catalog order
func (a *DepartmentAdapter) List(ctx context.Context) ([]*entities.Department, error) {
	return a.departments, nil
}

// ConsultationTypeAdapter implements ConsultationTypeRepository over the
// in-memory fixture
type ConsultationTypeAdapter struct {
	types []*entities.ConsultationType
	byID  map[string]*entities.ConsultationType
}

// NewConsultationTypeAdapter creates a new in-memory consultation type adapter
func NewConsultationTypeAdapter(fx Fixture) *ConsultationTypeAdapter {
	byID := make(map[string]*entities.ConsultationType, len(fx.ConsultationTypes))
	for _, ct := range fx.ConsultationTypes {
		byID[ct.ID] = ct
	}
	return &ConsultationTypeAdapter{types: fx.ConsultationTypes, byID: byID}
}

// GetByID retrieves a consultation type by ID
func (a *ConsultationTypeAdapter) GetByID(ctx context.Context, id string) (*entities.ConsultationType, error) {
	ct, ok := a.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("consultation type not found")
	}
	return ct, nil
}

// List retrieves all consultation types in catalog order
func (a *ConsultationTypeAdapter) List(ctx context.Context) ([]*entities.ConsultationType, error) {
	return a.types, nil
}

// ReferenceAdapter exposes the fixed filter enumerations
type ReferenceAdapter struct {
	cities           []string
	specializations  []string
	services         []*entities.Service
	segregationTypes []*entities.SegregationType
}

// NewReferenceAdapter creates a new in-memory reference data adapter
func NewReferenceAdapter(fx Fixture) *ReferenceAdapter {
	return &ReferenceAdapter{
		cities:           fx.Cities,
		specializations:  fx.Specializations,
		services:         fx.Services,
		segregationTypes: fx.SegregationTypes,
	}
}

func (a *ReferenceAdapter) Cities(ctx context.Context) ([]string, error) {
	return a.cities, nil
}

func (a *ReferenceAdapter) Specializations(ctx context.Context) ([]string, error) {
	return a.specializations, nil
}

func (a *ReferenceAdapter) Services(ctx context.Context) ([]*entities.Service, error) {
	return a.services, nil
}

func (a *ReferenceAdapter) SegregationTypes(ctx context.Context) ([]*entities.SegregationType, error) {
	return a.segregationTypes, nil
}
