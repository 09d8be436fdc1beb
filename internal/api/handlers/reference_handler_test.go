package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftmedhelp/backend/internal/adapters/catalog"
	"github.com/swiftmedhelp/backend/internal/api/handlers"
)

func newReferenceHandler() *handlers.ReferenceHandler {
	fx := catalog.Default()
	return handlers.NewReferenceHandler(
		catalog.NewReferenceAdapter(fx),
		catalog.NewDepartmentAdapter(fx),
		catalog.NewConsultationTypeAdapter(fx),
		3000,
	)
}

func TestReferenceHandler_ListConsultationTypes(t *testing.T) {
	t.Run("includes the fee ceiling for the price filter", func(t *testing.T) {
		handler := newReferenceHandler()

		req := httptest.NewRequest("GET", "/api/consultation-types", nil)
		w := httptest.NewRecorder()

		handler.ListConsultationTypes(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(3000), response["max_consultation_fee"])
		assert.Len(t, response["consultation_types"], 5)
	})
}

func TestReferenceHandler_ListCities(t *testing.T) {
	handler := newReferenceHandler()

	req := httptest.NewRequest("GET", "/api/cities", nil)
	w := httptest.NewRecorder()

	handler.ListCities(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["cities"], 10)
}
