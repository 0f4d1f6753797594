package predictor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/safestreets/safestreets-api/score"
)

const (
	statusOK = "ok"
)

var (
	errResponseStatus = fmt.Errorf("response status not ok")
	errEmptyURL       = fmt.Errorf("empty model url")
)

// Predictor invokes the pretrained safety-score pipeline served by the
// model process.
type Predictor interface {
	Predict(score.FeatureVector) (float64, error)
}

type predictor struct {
	url    string
	client *http.Client
}

type responseData struct {
	SafetyScore float64 `json:"safety_score"`
}

type jsonResponse struct {
	Status string       `json:"status"`
	Data   responseData `json:"data"`
}

func (p predictor) Predict(features score.FeatureVector) (float64, error) {
	if p.url == "" {
		return 0, errEmptyURL
	}

	body, err := json.Marshal(map[string]interface{}{
		"features": features,
		"columns":  score.FeatureColumns,
	})
	if nil != err {
		return 0, err
	}

	resp, err := p.client.Post(p.url, "application/json", bytes.NewReader(body))
	if nil != err {
		return 0, err
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return 0, err
	}
	defer resp.Body.Close()

	var r jsonResponse
	err = json.Unmarshal(d, &r)
	if nil != err {
		return 0, err
	}

	if r.Status != statusOK {
		return 0, errResponseStatus
	}

	return r.Data.SafetyScore, nil
}

func New(url string, client *http.Client) Predictor {
	if client == nil {
		client = http.DefaultClient
	}

	return &predictor{
		url:    url,
		client: client,
	}
}
