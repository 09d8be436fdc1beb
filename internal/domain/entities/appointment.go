package entities

import "time"

// AppointmentDraft is the confirmed booking snapshot carried from the
// booking step to the OP card. Doctor and hospital facts are copied in
// at confirmation time, not referenced, so the draft survives
// independently of catalog state. Created once, never mutated.
type AppointmentDraft struct {
	PatientName string `json:"patient_name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Phone       string `json:"phone"`
	Symptoms    string `json:"symptoms,omitempty"`
	// Date is the display-formatted appointment date.
	Date string `json:"date"`

	DoctorName   string `json:"doctor_name"`
	Department   string `json:"department"`
	HospitalName string `json:"hospital_name"`
	Fee          int    `json:"fee"`

	CreatedAt time.Time `json:"created_at"`
}

// OPCard is the printable outpatient registration card derived from an
// appointment draft. The OP number is a display artifact derived from
// render time; re-rendering the same draft may yield a different number.
type OPCard struct {
	OPNumber string           `json:"op_number"`
	Draft    AppointmentDraft `json:"appointment"`

	Instructions     []string `json:"instructions"`
	EmergencyContact string   `json:"emergency_contact"`

	// CodePattern is an 8x8 checker pattern printed as a check-in code
	// placeholder. Decorative only, not a scannable encoding.
	CodePattern [][]bool `json:"code_pattern"`
}
