package routes

import (
	"net/http"

	"github.com/swiftmedhelp/backend/internal/api/handlers"
	"github.com/swiftmedhelp/backend/internal/api/middleware"
	"github.com/swiftmedhelp/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	hospitalHandler  *handlers.HospitalHandler
	doctorHandler    *handlers.DoctorHandler
	referenceHandler *handlers.ReferenceHandler
	bookingHandler   *handlers.BookingHandler
	feedbackHandler  *handlers.FeedbackHandler

	cacheMiddleware   *middleware.CacheMiddleware
	sessionCookieName string
	metrics           *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	hospitalHandler *handlers.HospitalHandler,
	doctorHandler *handlers.DoctorHandler,
	referenceHandler *handlers.ReferenceHandler,
	bookingHandler *handlers.BookingHandler,
	feedbackHandler *handlers.FeedbackHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	sessionCookieName string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		hospitalHandler:  hospitalHandler,
		doctorHandler:    doctorHandler,
		referenceHandler: referenceHandler,
		bookingHandler:   bookingHandler,
		feedbackHandler:  feedbackHandler,

		cacheMiddleware:   cacheMiddleware,
		sessionCookieName: sessionCookieName,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Reference data endpoints
	r.mux.HandleFunc("GET /api/cities", r.referenceHandler.ListCities)
	r.mux.HandleFunc("GET /api/specializations", r.referenceHandler.ListSpecializations)
	r.mux.HandleFunc("GET /api/services", r.referenceHandler.ListServices)
	r.mux.HandleFunc("GET /api/segregation-types", r.referenceHandler.ListSegregationTypes)
	r.mux.HandleFunc("GET /api/consultation-types", r.referenceHandler.ListConsultationTypes)

	// Hospital endpoints
	r.mux.HandleFunc("GET /api/hospitals", r.hospitalHandler.ListHospitals)
	r.mux.HandleFunc("GET /api/hospitals/{id}", r.hospitalHandler.GetHospital)
	r.mux.HandleFunc("GET /api/hospitals/{id}/departments", r.hospitalHandler.GetHospitalDepartments)

	// Department endpoints
	r.mux.HandleFunc("GET /api/departments", r.referenceHandler.ListDepartments)
	r.mux.HandleFunc("GET /api/departments/{id}", r.referenceHandler.GetDepartment)

	// Doctor endpoints
	r.mux.HandleFunc("GET /api/doctors", r.doctorHandler.ListDoctors)
	r.mux.HandleFunc("GET /api/doctors/{id}", r.doctorHandler.GetDoctor)

	// Review endpoints
	r.mux.HandleFunc("GET /api/doctors/{id}/reviews", r.feedbackHandler.ListReviews)
	r.mux.HandleFunc("POST /api/doctors/{id}/reviews", r.feedbackHandler.SubmitReview)

	// Booking endpoints
	r.mux.HandleFunc("POST /api/appointments", r.bookingHandler.BookAppointment)
	r.mux.HandleFunc("GET /api/op-card", r.bookingHandler.GetOPCard)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// Session cookie must be issued before any handler needs the ID
	handler = middleware.SessionMiddleware(r.sessionCookieName)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
