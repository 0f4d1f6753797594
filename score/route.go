package score

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/safestreets/safestreets-api/geo"
	"github.com/safestreets/safestreets-api/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "score")
}

const (
	PreferenceFastest = "fastest"
	PreferenceSafest  = "safest"

	// MaxSafetyScore bounds the final score; MinSafetyScore is its
	// floor.
	MaxSafetyScore = 10.0
	MinSafetyScore = 0.0

	// incidentPenalty is subtracted from the model score whenever any
	// incident is recorded near the representative point.
	incidentPenalty = 1.0
)

// DirectionsProvider returns candidate routes between two points.
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination schema.Location) ([]maps.Route, error)
}

// Predictor invokes the pretrained scoring model.
type Predictor interface {
	Predict(FeatureVector) (float64, error)
}

// RatedRoute is a candidate route with its safety assessment, shaped
// for the client map view.
type RatedRoute struct {
	Name          string      `json:"name"`
	Duration      string      `json:"duration"`
	Distance      string      `json:"distance"`
	Color         string      `json:"color"`
	Coordinates   [][]float64 `json:"coordinates"`
	SafetyScore   float64     `json:"safetyScore"`
	SafetyDetails string      `json:"safetyDetails"`
}

// RouteScorer rates candidate routes from a directions provider. Only
// the directions call itself may fail; model and incident lookups
// degrade to fallbacks.
type RouteScorer struct {
	directions DirectionsProvider
	predictor  Predictor
	incidents  *IncidentAggregator

	now func() time.Time
	rnd *rand.Rand
}

func NewRouteScorer(directions DirectionsProvider, predictor Predictor, incidents *IncidentAggregator) *RouteScorer {
	return &RouteScorer{
		directions: directions,
		predictor:  predictor,
		incidents:  incidents,
		now:        time.Now,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ScoreRoutes fetches alternative routes between origin and
// destination and attaches a safety score to each. When preference is
// "safest" the result is ordered by descending score; otherwise
// provider order is preserved.
func (s *RouteScorer) ScoreRoutes(ctx context.Context, origin, destination schema.Location, preference string) ([]RatedRoute, error) {
	routes, err := s.directions.Directions(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	rated := make([]RatedRoute, 0, len(routes))
	for idx, route := range routes {
		rated = append(rated, s.rateRoute(route, idx, origin, preference))
	}

	if preference == PreferenceSafest {
		sort.SliceStable(rated, func(i, j int) bool {
			return rated[i].SafetyScore > rated[j].SafetyScore
		})
	}

	return rated, nil
}

func (s *RouteScorer) rateRoute(route maps.Route, idx int, origin schema.Location, preference string) RatedRoute {
	name := fmt.Sprintf("Route %d", idx+1)
	if preference == PreferenceSafest && idx == 0 {
		name = "Safest Path"
	}

	path := geo.RoutePath(route)

	representative := origin
	if len(path) > 0 {
		representative = schema.Location{Latitude: path[0].Lat, Longitude: path[0].Lng}
	}

	features := GenerateFeatures(representative.Latitude, representative.Longitude, s.now(), s.rnd)
	base, err := s.predictor.Predict(features)
	if err != nil {
		log.WithError(err).Warnf("model prediction failed for %s, sampling fallback score", name)
		base = s.rnd.Float64() * MaxSafetyScore
	}

	details := fmt.Sprintf("%s: Safety score derived from ML model.", name)
	summary := s.incidents.Nearby(representative)
	if summary.IncidentCount > 0 {
		base -= incidentPenalty
		details += fmt.Sprintf(" %d incidents recorded nearby.", summary.IncidentCount)
	}

	var duration, distance string
	if len(route.Legs) > 0 {
		duration = humanDuration(route.Legs[0].Duration)
		distance = route.Legs[0].Distance.HumanReadable
	}

	color := "green"
	if preference == PreferenceFastest {
		color = "blue"
	}

	coordinates := make([][]float64, 0, len(path))
	for _, p := range path {
		coordinates = append(coordinates, []float64{p.Lat, p.Lng})
	}

	return RatedRoute{
		Name:          name,
		Duration:      duration,
		Distance:      distance,
		Color:         color,
		Coordinates:   coordinates,
		SafetyScore:   clampScore(base),
		SafetyDetails: details,
	}
}

// clampScore bounds a score to [MinSafetyScore, MaxSafetyScore] and
// rounds it to two decimal places.
func clampScore(v float64) float64 {
	v = math.Min(MaxSafetyScore, math.Max(MinSafetyScore, v))
	return math.Round(v*100) / 100
}

func humanDuration(d time.Duration) string {
	mins := int(d.Round(time.Minute) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	hours := mins / 60
	mins = mins % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%d hr %d mins", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%d hr", hours)
	case mins == 1:
		return "1 min"
	default:
		return fmt.Sprintf("%d mins", mins)
	}
}
