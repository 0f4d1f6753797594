package predictor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safestreets/safestreets-api/external/predictor"
	"github.com/safestreets/safestreets-api/score"
)

func TestPredict(t *testing.T) {
	expected := 7.25
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Features score.FeatureVector `json:"features"`
			Columns  []string            `json:"columns"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Bengaluru", req.Features.City, "wrong feature payload")
		assert.Equal(t, score.FeatureColumns, req.Columns, "wrong column order")

		type data struct {
			SafetyScore float64 `json:"safety_score"`
		}

		type resp struct {
			Status string `json:"status"`
			Data   data   `json:"data"`
		}

		b, _ := json.Marshal(resp{
			Status: "ok",
			Data: data{
				SafetyScore: expected,
			},
		})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	p := predictor.New(ts.URL, nil)
	actual, err := p.Predict(score.FeatureVector{City: "Bengaluru"})
	assert.Nil(t, err, "wrong Predict")
	assert.Equal(t, expected, actual, "wrong safety score")
}

func TestPredictBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error"}`))
	}))
	defer ts.Close()

	p := predictor.New(ts.URL, nil)
	_, err := p.Predict(score.FeatureVector{})
	assert.Error(t, err)
}

func TestPredictEmptyURL(t *testing.T) {
	p := predictor.New("", nil)
	_, err := p.Predict(score.FeatureVector{})
	assert.Error(t, err)
}
