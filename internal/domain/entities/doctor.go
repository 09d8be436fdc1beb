package entities

// Availability represents a doctor's current availability state
type Availability string

const (
	AvailabilityAvailable   Availability = "Available"
	AvailabilityUnavailable Availability = "Unavailable"
)

// Doctor represents a doctor in the catalog
type Doctor struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	HospitalID     string  `json:"hospital_id"`
	Qualification  string  `json:"qualification"`
	Experience     int     `json:"experience"`
	// ConsultationFee is the base fee before any consultation-type
	// multiplier is applied.
	ConsultationFee int     `json:"consultation_fee"`
	Rating          float64 `json:"rating"`
	ReviewCount     int     `json:"review_count"`
	Timing          string  `json:"timing"`
	Image           string  `json:"image"`
	About           string  `json:"about"`

	Availability  Availability `json:"availability"`
	NextAvailable string       `json:"next_available"`

	Education []string `json:"education"`
	Awards    []string `json:"awards"`
	Languages []string `json:"languages"`
}
