package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alvinwquach/macronutrient-calculator/models"
	"github.com/alvinwquach/macronutrient-calculator/routes"
	"github.com/alvinwquach/macronutrient-calculator/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return routes.SetupRouter()
}

func postEstimate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)
	return w
}

const validBody = `{
	"weight": 180,
	"heightFeet": 5,
	"heightInches": 10,
	"age": 30,
	"gender": "male",
	"activityLevel": 1.55,
	"goal": "maintain"
}`

type estimateResponse struct {
	Result  models.EstimateResult `json:"result"`
	Display utils.DisplayResult   `json:"display"`
}

func TestEstimate_HappyPath(t *testing.T) {
	w := postEstimate(t, validBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp estimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// bmr=1661.25, tdee=1661.25*1.55=2574.9375, maintain keeps it
	assert.InDelta(t, 2574.9375, resp.Result.Calories, 1e-9)
	assert.InDelta(t, 160.93359375, resp.Result.Protein, 1e-9)
	assert.InDelta(t, 289.68046875, resp.Result.Carbs, 1e-9)
	assert.InDelta(t, 85.83125, resp.Result.Fat, 1e-9)

	assert.Equal(t, utils.DisplayResult{Calories: 2575, Protein: 161, Carbs: 290, Fat: 86}, resp.Display)
}

// TestEstimate_RejectsInvalidInput drives the binding layer with
// out-of-domain payloads; every case must 400 before the estimator runs.
func TestEstimate_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing weight", `{"heightFeet":5,"heightInches":10,"age":30,"gender":"male","activityLevel":1.55,"goal":"maintain"}`},
		{"zero weight", `{"weight":0,"heightFeet":5,"heightInches":10,"age":30,"gender":"male","activityLevel":1.55,"goal":"maintain"}`},
		{"negative weight", `{"weight":-150,"heightFeet":5,"heightInches":10,"age":30,"gender":"male","activityLevel":1.55,"goal":"maintain"}`},
		{"negative height feet", `{"weight":180,"heightFeet":-1,"heightInches":10,"age":30,"gender":"male","activityLevel":1.55,"goal":"maintain"}`},
		{"height inches out of range", `{"weight":180,"heightFeet":5,"heightInches":12,"age":30,"gender":"male","activityLevel":1.55,"goal":"maintain"}`},
		{"zero age", `{"weight":180,"heightFeet":5,"heightInches":10,"age":0,"gender":"male","activityLevel":1.55,"goal":"maintain"}`},
		{"missing gender", `{"weight":180,"heightFeet":5,"heightInches":10,"age":30,"activityLevel":1.55,"goal":"maintain"}`},
		{"unknown gender", `{"weight":180,"heightFeet":5,"heightInches":10,"age":30,"gender":"robot","activityLevel":1.55,"goal":"maintain"}`},
		{"off-table activity level", `{"weight":180,"heightFeet":5,"heightInches":10,"age":30,"gender":"male","activityLevel":1.3,"goal":"maintain"}`},
		{"unknown goal", `{"weight":180,"heightFeet":5,"heightInches":10,"age":30,"gender":"male","activityLevel":1.55,"goal":"bulk"}`},
		{"not json", `weight=180`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postEstimate(t, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body, "error")
		})
	}
}

func TestEstimate_SetsRequestID(t *testing.T) {
	w := postEstimate(t, validBody)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestEstimate_EchoesClientRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "client-chosen-id")
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)

	assert.Equal(t, "client-chosen-id", w.Header().Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
