package entities

import "time"

// CategoryRatings holds the six per-category sub-ratings of a review,
// each on a 1-5 scale.
type CategoryRatings struct {
	Knowledge     int `json:"knowledge"`
	Communication int `json:"communication"`
	WaitTime      int `json:"wait_time"`
	Cleanliness   int `json:"cleanliness"`
	StaffBehavior int `json:"staff_behavior"`
	ValueForMoney int `json:"value_for_money"`
}

// Review represents patient feedback for a doctor. Reviews are shown on
// the doctor's profile; the search engine does not consult them.
type Review struct {
	ID          string          `json:"id"`
	DoctorID    string          `json:"doctor_id"`
	PatientName string          `json:"patient_name"`
	Rating      int             `json:"rating"`
	Comment     string          `json:"comment"`
	Categories  CategoryRatings `json:"categories"`
	CreatedAt   time.Time       `json:"created_at"`
	Verified    bool            `json:"verified"`
}
