package entities

// Department represents a medical department offered by hospitals
type Department struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Icon            string  `json:"icon"`
	Description     string  `json:"description"`
	ConsultingHours string  `json:"consulting_hours"`
	ConsultationFee int     `json:"consultation_fee"`
	AverageWaitTime string  `json:"average_wait_time"`
	TotalBeds       int     `json:"total_beds"`
	SuccessRate     float64 `json:"success_rate"`
	Established     int     `json:"established"`
	DepartmentHead  string  `json:"department_head"`

	KeyFeatures     []string `json:"key_features"`
	Specializations []string `json:"specializations"`
	Equipment       []string `json:"equipment"`
	Treatments      []string `json:"treatments"`

	EmergencyAvailable bool `json:"emergency_available"`
}
