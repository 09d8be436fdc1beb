package catalog

import (
	"time"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
)

// Fixture is the static catalog fact base. It is loaded once at process
// start and never mutated for the process lifetime.
type Fixture struct {
	Cities            []string
	Specializations   []string
	Services          []*entities.Service
	SegregationTypes  []*entities.SegregationType
	ConsultationTypes []*entities.ConsultationType
	Hospitals         []*entities.Hospital
	Departments       []*entities.Department
	Doctors           []*entities.Doctor
	Reviews           []*entities.Review
}

// Default returns the built-in catalog fixture.
func Default() Fixture {
	return Fixture{
		Cities: []string{
			"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata",
			"Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Lucknow",
		},
		Specializations: []string{
			"Cardiology", "Neurology", "Orthopedics", "Pediatrics",
			"Dermatology", "Ophthalmology", "ENT", "General Medicine",
			"Gastroenterology", "Nephrology", "Oncology", "Psychiatry",
		},
		Services: []*entities.Service{
			{ID: "pharmacy", Name: "24x7 Pharmacy", Icon: "💊"},
			{ID: "lab", Name: "Diagnostic Lab", Icon: "🔬"},
			{ID: "blood-bank", Name: "Blood Bank", Icon: "🩸"},
			{ID: "icu", Name: "ICU", Icon: "🏥"},
			{ID: "radiology", Name: "Radiology", Icon: "🩻"},
			{ID: "physiotherapy", Name: "Physiotherapy", Icon: "🧘"},
		},
		SegregationTypes: []*entities.SegregationType{
			{ID: "general-ward", Name: "General Ward", Icon: "🛏️"},
			{ID: "semi-private", Name: "Semi-Private Room", Icon: "🚪"},
			{ID: "private", Name: "Private Room", Icon: "🔒"},
			{ID: "deluxe", Name: "Deluxe Suite", Icon: "✨"},
		},
		ConsultationTypes: []*entities.ConsultationType{
			{ID: "in-person", Name: "In-Person", Icon: "🏥", PriceMultiplier: 1.0},
			{ID: "video", Name: "Video Call", Icon: "📹", PriceMultiplier: 0.7},
			{ID: "phone", Name: "Phone Call", Icon: "📞", PriceMultiplier: 0.5},
			{ID: "home-visit", Name: "Home Visit", Icon: "🏠", PriceMultiplier: 1.5},
			{ID: "emergency", Name: "Emergency", Icon: "🚨", PriceMultiplier: 2.0},
		},
		Hospitals: []*entities.Hospital{
			{
				ID: "apollo", Name: "Apollo Hospital", City: "Mumbai",
				Address: "Parsn Complex, Sahar Road, Andheri East",
				Rating:  4.8, ReviewCount: 1240, Beds: 450, Established: 1983,
				Image:   "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800&q=80",
				Parking: true, Wifi: true, Emergency: true, Ambulance: true,
				Facilities:     []string{"24x7 Emergency", "Cath Lab", "MRI & CT Scan", "Organ Transplant Unit"},
				DepartmentIDs:  []string{"cardiology", "pediatrics", "general-medicine", "neurology"},
				ServiceIDs:     []string{"pharmacy", "lab", "blood-bank", "icu", "radiology"},
				SegregationIDs: []string{"general-ward", "semi-private", "private", "deluxe"},
			},
			{
				ID: "fortis", Name: "Fortis Healthcare", City: "Mumbai",
				Address: "Mulund Goregaon Link Road",
				Rating:  4.6, ReviewCount: 890, Beds: 300, Established: 2002,
				Image:   "https://images.unsplash.com/photo-1586773860418-d37222d8fce3?w=800&q=80",
				Parking: true, Wifi: true, Emergency: true, Ambulance: false,
				Facilities:     []string{"Joint Replacement Centre", "Sports Medicine", "Dialysis Unit"},
				DepartmentIDs:  []string{"orthopedics", "general-medicine", "dermatology"},
				ServiceIDs:     []string{"pharmacy", "lab", "icu", "physiotherapy"},
				SegregationIDs: []string{"general-ward", "semi-private", "private"},
			},
			{
				ID: "lilavati", Name: "Lilavati Hospital", City: "Mumbai",
				Address: "A-791, Bandra Reclamation",
				Rating:  4.7, ReviewCount: 1023, Beds: 320, Established: 1978,
				Image:   "https://images.unsplash.com/photo-1632833239869-a37e3a5806d2?w=800&q=80",
				Parking: false, Wifi: true, Emergency: true, Ambulance: true,
				Facilities:     []string{"Stroke Unit", "Neuro ICU", "Epilepsy Monitoring"},
				DepartmentIDs:  []string{"neurology", "cardiology"},
				ServiceIDs:     []string{"pharmacy", "lab", "icu", "radiology"},
				SegregationIDs: []string{"semi-private", "private", "deluxe"},
			},
			{
				ID: "aiims", Name: "AIIMS", City: "Delhi",
				Address: "Ansari Nagar, New Delhi",
				Rating:  4.9, ReviewCount: 2150, Beds: 2400, Established: 1956,
				Image:   "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800&q=80",
				Parking: true, Wifi: false, Emergency: true, Ambulance: true,
				Facilities:     []string{"Trauma Centre", "Research Wing", "24x7 Emergency", "Burns Unit"},
				DepartmentIDs:  []string{"cardiology", "neurology", "orthopedics", "pediatrics", "general-medicine"},
				ServiceIDs:     []string{"pharmacy", "lab", "blood-bank", "icu", "radiology", "physiotherapy"},
				SegregationIDs: []string{"general-ward", "semi-private"},
			},
			{
				ID: "max", Name: "Max Hospital", City: "Delhi",
				Address: "Saket, New Delhi",
				Rating:  4.7, ReviewCount: 980, Beds: 500, Established: 2006,
				Image:   "https://images.unsplash.com/photo-1586773860418-d37222d8fce3?w=800&q=80",
				Parking: true, Wifi: true, Emergency: false, Ambulance: true,
				Facilities:     []string{"Robotic Surgery", "Cancer Care Centre", "Skin & Aesthetics"},
				DepartmentIDs:  []string{"dermatology", "pediatrics", "general-medicine"},
				ServiceIDs:     []string{"pharmacy", "lab", "radiology"},
				SegregationIDs: []string{"semi-private", "private", "deluxe"},
			},
		},
		Departments: []*entities.Department{
			{
				ID: "cardiology", Name: "Cardiology", Icon: "❤️",
				Description:     "Comprehensive heart care from prevention to complex intervention.",
				ConsultingHours: "Mon-Sat: 9 AM - 5 PM",
				ConsultationFee: 1500, AverageWaitTime: "25 min",
				TotalBeds: 60, SuccessRate: 96.5, Established: 1988,
				DepartmentHead:  "Dr. Rajesh Kumar",
				KeyFeatures:     []string{"24x7 Cath Lab", "Dedicated Cardiac ICU", "Rehabilitation Programme"},
				Specializations: []string{"Interventional Cardiology", "Electrophysiology", "Heart Failure"},
				Equipment:       []string{"Cardiac Cath Lab", "3D Echocardiography", "Treadmill Test"},
				Treatments:      []string{"Angioplasty", "Bypass Surgery", "Pacemaker Implantation"},
				EmergencyAvailable: true,
			},
			{
				ID: "neurology", Name: "Neurology", Icon: "🧠",
				Description:     "Diagnosis and treatment of disorders of the brain, spine and nerves.",
				ConsultingHours: "Tue-Sat: 10 AM - 4 PM",
				ConsultationFee: 1800, AverageWaitTime: "35 min",
				TotalBeds: 40, SuccessRate: 93.2, Established: 1995,
				DepartmentHead:  "Dr. Sneha Reddy",
				KeyFeatures:     []string{"Stroke Unit", "Neuro ICU", "Epilepsy Monitoring Unit"},
				Specializations: []string{"Stroke Medicine", "Epileptology", "Movement Disorders"},
				Equipment:       []string{"3T MRI", "EEG Lab", "EMG/NCS"},
				Treatments:      []string{"Thrombolysis", "Deep Brain Stimulation", "Botulinum Therapy"},
				EmergencyAvailable: true,
			},
			{
				ID: "orthopedics", Name: "Orthopedics", Icon: "🦴",
				Description:     "Bone, joint and spine care including replacement and sports injuries.",
				ConsultingHours: "Mon-Fri: 9 AM - 6 PM",
				ConsultationFee: 1200, AverageWaitTime: "20 min",
				TotalBeds: 50, SuccessRate: 97.1, Established: 1992,
				DepartmentHead:  "Dr. Amit Patel",
				KeyFeatures:     []string{"Joint Replacement Centre", "Sports Medicine Clinic", "Arthroscopy Suite"},
				Specializations: []string{"Joint Replacement", "Spine Surgery", "Sports Medicine"},
				Equipment:       []string{"Digital X-Ray", "C-Arm", "Arthroscopy Tower"},
				Treatments:      []string{"Joint Replacement", "Arthroscopy", "Spinal Fusion"},
				EmergencyAvailable: false,
			},
			{
				ID: "pediatrics", Name: "Pediatrics", Icon: "👶",
				Description:     "Complete child health care from newborn to adolescence.",
				ConsultingHours: "Mon-Sat: 9 AM - 1 PM",
				ConsultationFee: 1000, AverageWaitTime: "15 min",
				TotalBeds: 35, SuccessRate: 98.4, Established: 1985,
				DepartmentHead:  "Dr. Priya Sharma",
				KeyFeatures:     []string{"Level III NICU", "Child Development Clinic", "Vaccination Centre"},
				Specializations: []string{"Neonatology", "Pediatric Cardiology", "Developmental Pediatrics"},
				Equipment:       []string{"Incubators", "Pediatric Ventilators", "Phototherapy Units"},
				Treatments:      []string{"Neonatal Care", "Growth Monitoring", "Immunization"},
				EmergencyAvailable: true,
			},
			{
				ID: "general-medicine", Name: "General Medicine", Icon: "🩺",
				Description:     "First-line diagnosis and management of adult medical conditions.",
				ConsultingHours: "Mon-Sat: 8 AM - 8 PM",
				ConsultationFee: 800, AverageWaitTime: "10 min",
				TotalBeds: 80, SuccessRate: 95.0, Established: 1980,
				DepartmentHead:  "Dr. Vikram Singh",
				KeyFeatures:     []string{"Preventive Health Checks", "Diabetes Clinic", "Hypertension Clinic"},
				Specializations: []string{"Internal Medicine", "Infectious Diseases", "Geriatrics"},
				Equipment:       []string{"ECG", "Spirometry", "Point-of-Care Lab"},
				Treatments:      []string{"Diabetes Management", "Fever Evaluation", "Health Checkups"},
				EmergencyAvailable: true,
			},
			{
				ID: "dermatology", Name: "Dermatology", Icon: "🧴",
				Description:     "Medical and cosmetic care for skin, hair and nails.",
				ConsultingHours: "Mon-Fri: 11 AM - 5 PM",
				ConsultationFee: 900, AverageWaitTime: "18 min",
				TotalBeds: 10, SuccessRate: 97.8, Established: 2001,
				DepartmentHead:  "Dr. Kavita Nair",
				KeyFeatures:     []string{"Laser Suite", "Allergy Testing", "Cosmetic Dermatology"},
				Specializations: []string{"Clinical Dermatology", "Dermatosurgery", "Trichology"},
				Equipment:       []string{"Fractional Laser", "Dermatoscope", "Phototherapy Chamber"},
				Treatments:      []string{"Acne Treatment", "Laser Resurfacing", "Patch Testing"},
				EmergencyAvailable: false,
			},
		},
		Doctors: []*entities.Doctor{
			{
				ID: "dr-rajesh-kumar", Name: "Dr. Rajesh Kumar", Specialization: "Cardiology",
				HospitalID: "apollo", Qualification: "MBBS, MD (Cardiology), FACC",
				Experience: 15, ConsultationFee: 1500, Rating: 4.8, ReviewCount: 234,
				Timing: "Mon-Fri: 10 AM - 2 PM",
				Image:  "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&q=80",
				About:  "Specialized in interventional cardiology with expertise in angioplasty and cardiac catheterization.",
				Availability: entities.AvailabilityAvailable, NextAvailable: "Today",
				Education: []string{"MBBS - AIIMS Delhi", "MD Cardiology - PGI Chandigarh", "Fellowship - Cleveland Clinic"},
				Awards:    []string{"Best Cardiologist 2022 - IMA", "Excellence in Interventional Cardiology"},
				Languages: []string{"English", "Hindi", "Marathi"},
			},
			{
				ID: "dr-priya-sharma", Name: "Dr. Priya Sharma", Specialization: "Pediatrics",
				HospitalID: "apollo", Qualification: "MBBS, MD (Pediatrics)",
				Experience: 12, ConsultationFee: 1000, Rating: 4.9, ReviewCount: 456,
				Timing: "Mon-Sat: 9 AM - 1 PM",
				Image:  "https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=400&q=80",
				About:  "Expert in newborn care, child development, and pediatric emergencies.",
				Availability: entities.AvailabilityAvailable, NextAvailable: "Today",
				Education: []string{"MBBS - Grant Medical College", "MD Pediatrics - KEM Hospital"},
				Awards:    []string{"Young Pediatrician Award 2019"},
				Languages: []string{"English", "Hindi"},
			},
			{
				ID: "dr-amit-patel", Name: "Dr. Amit Patel", Specialization: "Orthopedics",
				HospitalID: "fortis", Qualification: "MBBS, MS (Orthopedics)",
				Experience: 18, ConsultationFee: 1200, Rating: 4.7, ReviewCount: 312,
				Timing: "Mon-Fri: 3 PM - 6 PM",
				Image:  "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=400&q=80",
				About:  "Specialist in joint replacement surgery and sports medicine.",
				Availability: entities.AvailabilityUnavailable, NextAvailable: "Tomorrow",
				Education: []string{"MBBS - BJ Medical College", "MS Orthopedics - Seth GS Medical College"},
				Awards:    []string{"Arthroplasty Gold Medal 2017"},
				Languages: []string{"English", "Hindi", "Gujarati"},
			},
			{
				ID: "dr-sneha-reddy", Name: "Dr. Sneha Reddy", Specialization: "Neurology",
				HospitalID: "lilavati", Qualification: "MBBS, DM (Neurology)",
				Experience: 10, ConsultationFee: 1800, Rating: 4.8, ReviewCount: 198,
				Timing: "Tue-Sat: 11 AM - 3 PM",
				Image:  "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&q=80",
				About:  "Focused on stroke management, epilepsy, and neurodegenerative disorders.",
				Availability: entities.AvailabilityAvailable, NextAvailable: "Today",
				Education: []string{"MBBS - Osmania Medical College", "DM Neurology - NIMHANS"},
				Awards:    []string{"Stroke Care Excellence 2021"},
				Languages: []string{"English", "Hindi", "Telugu"},
			},
			{
				ID: "dr-vikram-singh", Name: "Dr. Vikram Singh", Specialization: "General Medicine",
				HospitalID: "fortis", Qualification: "MBBS, MD (Internal Medicine)",
				Experience: 20, ConsultationFee: 800, Rating: 4.6, ReviewCount: 523,
				Timing: "Mon-Sat: 8 AM - 12 PM",
				Image:  "https://images.unsplash.com/photo-1537368910025-700350fe46c7?w=400&q=80",
				About:  "General physician with expertise in diabetes, hypertension, and preventive care.",
				Availability: entities.AvailabilityAvailable, NextAvailable: "Today",
				Education: []string{"MBBS - Armed Forces Medical College", "MD Medicine - AIIMS Delhi"},
				Awards:    []string{"Distinguished Physician 2020"},
				Languages: []string{"English", "Hindi", "Punjabi"},
			},
			{
				ID: "dr-kavita-nair", Name: "Dr. Kavita Nair", Specialization: "Dermatology",
				HospitalID: "max", Qualification: "MBBS, MD (Dermatology)",
				Experience: 9, ConsultationFee: 900, Rating: 4.5, ReviewCount: 167,
				Timing: "Mon-Fri: 11 AM - 5 PM",
				Image:  "https://images.unsplash.com/photo-1651008376811-b90baee60c1f?w=400&q=80",
				About:  "Clinical dermatologist with a special interest in laser therapy and allergy testing.",
				Availability: entities.AvailabilityUnavailable, NextAvailable: "Mon, Next Week",
				Education: []string{"MBBS - Madras Medical College", "MD Dermatology - CMC Vellore"},
				Awards:    nil,
				Languages: []string{"English", "Malayalam", "Tamil"},
			},
			{
				ID: "dr-arjun-mehta", Name: "Dr. Arjun Mehta", Specialization: "Cardiology",
				HospitalID: "aiims", Qualification: "MBBS, DM (Cardiology)",
				Experience: 22, ConsultationFee: 1600, Rating: 4.9, ReviewCount: 612,
				Timing: "Mon-Thu: 9 AM - 1 PM",
				Image:  "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=400&q=80",
				About:  "Senior cardiologist specializing in complex coronary interventions and structural heart disease.",
				Availability: entities.AvailabilityAvailable, NextAvailable: "Today",
				Education: []string{"MBBS - Maulana Azad Medical College", "DM Cardiology - AIIMS Delhi"},
				Awards:    []string{"Padma Shri Nominee 2023", "Lifetime Achievement - CSI"},
				Languages: []string{"English", "Hindi"},
			},
			{
				ID: "dr-meera-iyer", Name: "Dr. Meera Iyer", Specialization: "Pediatrics",
				HospitalID: "max", Qualification: "MBBS, MD (Pediatrics), Fellowship (Neonatology)",
				Experience: 14, ConsultationFee: 1100, Rating: 4.7, ReviewCount: 289,
				Timing: "Tue-Sun: 10 AM - 2 PM",
				Image:  "https://images.unsplash.com/photo-1527613426441-4da17471b66d?w=400&q=80",
				About:  "Neonatologist experienced in intensive care of premature and critically ill newborns.",
				Availability: entities.AvailabilityAvailable, NextAvailable: "Today",
				Education: []string{"MBBS - JIPMER", "MD Pediatrics - CMC Vellore"},
				Awards:    []string{"NICU Excellence Award 2022"},
				Languages: []string{"English", "Tamil", "Hindi"},
			},
		},
		Reviews: []*entities.Review{
			{
				ID: "rev-seed-1", DoctorID: "dr-rajesh-kumar", PatientName: "Suresh M.",
				Rating: 5, Comment: "Very thorough consultation, explained everything clearly.",
				Categories: entities.CategoryRatings{Knowledge: 5, Communication: 5, WaitTime: 4, Cleanliness: 5, StaffBehavior: 5, ValueForMoney: 4},
				CreatedAt:  time.Date(2025, 11, 12, 10, 30, 0, 0, time.UTC), Verified: true,
			},
			{
				ID: "rev-seed-2", DoctorID: "dr-rajesh-kumar", PatientName: "Anita D.",
				Rating: 4, Comment: "Good experience overall, wait time was a bit long.",
				Categories: entities.CategoryRatings{Knowledge: 5, Communication: 4, WaitTime: 3, Cleanliness: 5, StaffBehavior: 4, ValueForMoney: 4},
				CreatedAt:  time.Date(2025, 12, 2, 15, 45, 0, 0, time.UTC), Verified: true,
			},
			{
				ID: "rev-seed-3", DoctorID: "dr-priya-sharma", PatientName: "Rahul K.",
				Rating: 5, Comment: "Wonderful with kids, my daughter was completely at ease.",
				Categories: entities.CategoryRatings{Knowledge: 5, Communication: 5, WaitTime: 5, Cleanliness: 5, StaffBehavior: 5, ValueForMoney: 5},
				CreatedAt:  time.Date(2026, 1, 18, 9, 15, 0, 0, time.UTC), Verified: true,
			},
		},
	}
}
