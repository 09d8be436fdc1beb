package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/swiftmedhelp/backend/internal/adapters/catalog"
	"github.com/swiftmedhelp/backend/internal/api/handlers"
	"github.com/swiftmedhelp/backend/internal/application/services"
	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/repositories"
)

// MockDoctorSearchService defines the mock search service
type MockDoctorSearchService struct {
	mock.Mock
}

func (m *MockDoctorSearchService) SearchDoctors(ctx context.Context, filter repositories.DoctorFilter) ([]services.DoctorResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.DoctorResult), args.Error(1)
}

func TestDoctorHandler_ListDoctors(t *testing.T) {
	t.Run("parses query parameters into the filter", func(t *testing.T) {
		mockSearch := new(MockDoctorSearchService)
		handler := handlers.NewDoctorHandler(mockSearch, catalog.NewDoctorAdapter(catalog.Default()), nil)

		mockSearch.On("SearchDoctors", mock.Anything, repositories.DoctorFilter{
			Query:              "rajesh",
			Specialization:     "Cardiology",
			HospitalID:         "apollo",
			MinPrice:           500,
			MaxPrice:           2000,
			MinRating:          4.5,
			AvailableOnly:      true,
			ConsultationTypeID: "video",
			SortBy:             repositories.SortByPriceLow,
		}).Return([]services.DoctorResult{
			{Doctor: &entities.Doctor{ID: "dr-rajesh-kumar"}, AdjustedFee: 1050},
		}, nil)

		req := httptest.NewRequest("GET", "/api/doctors?search=rajesh&specialization=Cardiology&hospital_id=apollo&min_price=500&max_price=2000&min_rating=4.5&available_only=true&consultation_type=video&sort_by=price-low", nil)
		w := httptest.NewRecorder()

		handler.ListDoctors(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSearch.AssertExpectations(t)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(1), response["count"])
	})

	t.Run("malformed numeric parameters leave the filter inactive", func(t *testing.T) {
		mockSearch := new(MockDoctorSearchService)
		handler := handlers.NewDoctorHandler(mockSearch, catalog.NewDoctorAdapter(catalog.Default()), nil)

		mockSearch.On("SearchDoctors", mock.Anything, repositories.DoctorFilter{}).
			Return([]services.DoctorResult{}, nil)

		req := httptest.NewRequest("GET", "/api/doctors?min_price=lots&min_rating=high", nil)
		w := httptest.NewRecorder()

		handler.ListDoctors(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSearch.AssertExpectations(t)
	})

	t.Run("empty result still responds OK", func(t *testing.T) {
		mockSearch := new(MockDoctorSearchService)
		handler := handlers.NewDoctorHandler(mockSearch, catalog.NewDoctorAdapter(catalog.Default()), nil)

		mockSearch.On("SearchDoctors", mock.Anything, mock.Anything).
			Return([]services.DoctorResult{}, nil)

		req := httptest.NewRequest("GET", "/api/doctors?search=nobody", nil)
		w := httptest.NewRecorder()

		handler.ListDoctors(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(0), response["count"])
	})
}

func TestDoctorHandler_GetDoctor(t *testing.T) {
	handler := handlers.NewDoctorHandler(new(MockDoctorSearchService), catalog.NewDoctorAdapter(catalog.Default()), nil)

	t.Run("returns the doctor", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/doctors/dr-rajesh-kumar", nil)
		req.SetPathValue("id", "dr-rajesh-kumar")
		w := httptest.NewRecorder()

		handler.GetDoctor(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var doctor entities.Doctor
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctor))
		assert.Equal(t, "Dr. Rajesh Kumar", doctor.Name)
	})

	t.Run("unknown doctor is 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/doctors/dr-nobody", nil)
		req.SetPathValue("id", "dr-nobody")
		w := httptest.NewRecorder()

		handler.GetDoctor(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
