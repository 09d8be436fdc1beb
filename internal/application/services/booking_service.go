package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/providers"
	"github.com/swiftmedhelp/backend/internal/domain/repositories"
	apperrors "github.com/swiftmedhelp/backend/pkg/errors"
)

const (
	// bookingDateLayout is the wire format of the appointment date.
	bookingDateLayout = "2006-01-02"
	// displayDateLayout is the format written into the draft and printed
	// on the OP card.
	displayDateLayout = "January 2, 2006"
)

// BookingRequest holds the patient-entered booking fields bound to one doctor
type BookingRequest struct {
	DoctorID    string `json:"doctor_id" validate:"required"`
	PatientName string `json:"patient_name" validate:"required"`
	Age         int    `json:"age" validate:"required,gt=0"`
	Gender      string `json:"gender" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Symptoms    string `json:"symptoms"`
	// Date is the chosen appointment date in YYYY-MM-DD form. It must be
	// today or later.
	Date string `json:"date" validate:"required"`
}

// BookingConfirmation is returned after a successful booking
type BookingConfirmation struct {
	Message     string                     `json:"message"`
	Appointment *entities.AppointmentDraft `json:"appointment"`
}

// BookingService validates patient-entered fields against a selected
// doctor and, on success, writes an immutable appointment draft to the
// session handoff store.
type BookingService struct {
	doctorRepo   repositories.DoctorRepository
	hospitalRepo repositories.HospitalRepository
	handoff      providers.HandoffStore
	validate     *validator.Validate
	now          func() time.Time
}

// NewBookingService creates a new booking service
func NewBookingService(
	doctorRepo repositories.DoctorRepository,
	hospitalRepo repositories.HospitalRepository,
	handoff providers.HandoffStore,
) *BookingService {
	v := validator.New()
	// Report validation errors under the JSON field names the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &BookingService{
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
		handoff:      handoff,
		validate:     v,
		now:          time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// Book validates the request and, on success, snapshots the doctor and
// hospital facts into an appointment draft stored in the session's
// handoff slot. Validation failures return a field-level AppError and
// leave the handoff slot untouched.
func (s *BookingService) Book(ctx context.Context, sessionID string, req BookingRequest) (*BookingConfirmation, error) {
	if fields := s.validateRequest(req); len(fields) > 0 {
		return nil, apperrors.NewFieldValidationError(fields)
	}

	doctor, err := s.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}
	hospital, err := s.hospitalRepo.GetByID(ctx, doctor.HospitalID)
	if err != nil {
		return nil, err
	}

	date, _ := time.Parse(bookingDateLayout, req.Date)

	draft := &entities.AppointmentDraft{
		PatientName:  strings.TrimSpace(req.PatientName),
		Age:          req.Age,
		Gender:       strings.TrimSpace(req.Gender),
		Phone:        strings.TrimSpace(req.Phone),
		Symptoms:     strings.TrimSpace(req.Symptoms),
		Date:         date.Format(displayDateLayout),
		DoctorName:   doctor.Name,
		Department:   doctor.Specialization,
		HospitalName: hospital.Name,
		Fee:          doctor.ConsultationFee,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.handoff.Put(ctx, sessionID, draft); err != nil {
		return nil, apperrors.NewInternalError("failed to store appointment draft", err)
	}

	return &BookingConfirmation{
		Message:     "Appointment booked successfully!",
		Appointment: draft,
	}, nil
}

// validateRequest collects field-level validation messages. An empty map
// means the request is valid.
func (s *BookingService) validateRequest(req BookingRequest) map[string]string {
	fields := make(map[string]string)

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fieldMessage(fe)
			}
		} else {
			fields["request"] = "invalid booking request"
		}
	}

	// Date gets its own rules beyond presence: it must parse and must not
	// be before today (today itself is allowed). Parse in the clock's
	// location so the calendar comparison does not shift across the UTC
	// boundary on servers west of it.
	if req.Date != "" {
		today := s.now()
		date, err := time.ParseInLocation(bookingDateLayout, req.Date, today.Location())
		if err != nil {
			fields["date"] = "date must be in YYYY-MM-DD format"
		} else {
			todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
			if date.Before(todayStart) {
				fields["date"] = "date cannot be in the past"
			}
		}
	}

	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "date" {
			return "please select a date"
		}
		return fe.Field() + " is required"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
