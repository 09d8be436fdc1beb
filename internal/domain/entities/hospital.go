package entities

// Hospital represents a hospital in the catalog. Catalog entities are
// loaded once at startup and never mutated afterwards.
type Hospital struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Beds        int     `json:"beds"`
	Established int     `json:"established"`
	Image       string  `json:"image"`

	// Amenity flags
	Parking   bool `json:"parking"`
	Wifi      bool `json:"wifi"`
	Emergency bool `json:"emergency"`
	Ambulance bool `json:"ambulance"`

	// Free-text facility descriptions, searchable
	Facilities []string `json:"facilities"`

	// References into the catalog
	DepartmentIDs  []string `json:"department_ids"`
	ServiceIDs     []string `json:"service_ids"`
	SegregationIDs []string `json:"segregation_ids"`
}

// Service represents an auxiliary hospital service (pharmacy, lab, ...)
type Service struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SegregationType represents a room segregation option (general ward,
// semi-private, private, deluxe, ...)
type SegregationType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
