package score

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/safestreets/safestreets-api/schema"
)

const (
	// DefaultRadiusKm is the search radius around a representative
	// point when summarizing nearby incidents.
	DefaultRadiusKm = 0.5

	// MaxIncidentRecords caps how many rows one aggregation reads.
	MaxIncidentRecords = 200

	degreesPerKm = 1.0 / 111.0
)

// IncidentSummary describes the historical incidents found around a
// coordinate.
type IncidentSummary struct {
	IncidentCount        int      `json:"incident_count"`
	AvgSeverityScore     float64  `json:"avg_severity_score"`
	PercentSafeIncidents float64  `json:"perc_safe_incidents"`
	CrimeTypesNearby     []string `json:"crime_types_nearby"`
}

// NeutralSummary is the value an aggregation collapses to when the
// incident source is unavailable: no incidents, fully safe.
func NeutralSummary() IncidentSummary {
	return IncidentSummary{
		PercentSafeIncidents: 100,
		CrimeTypesNearby:     []string{},
	}
}

// BoundsAround converts a radius in kilometers into an axis-aligned
// bounding box. The longitude delta widens with latitude to account
// for meridian convergence.
func BoundsAround(loc schema.Location, radiusKm float64) schema.BoundingBox {
	latDelta := radiusKm * degreesPerKm
	lngDelta := radiusKm / (111.0 * math.Cos(loc.Latitude*math.Pi/180))

	return schema.BoundingBox{
		MinLatitude:  loc.Latitude - latDelta,
		MaxLatitude:  loc.Latitude + latDelta,
		MinLongitude: loc.Longitude - lngDelta,
		MaxLongitude: loc.Longitude + lngDelta,
	}
}

// Summarize reduces incident records to count, mean severity, the
// percentage flagged as having occurred on a route previously marked
// safe, and the distinct incident types present.
func Summarize(records []schema.CrimeLog) IncidentSummary {
	summary := IncidentSummary{
		CrimeTypesNearby: []string{},
	}
	if len(records) == 0 {
		return summary
	}

	var totalSeverity float64
	var safeRouteIncidents int
	seenTypes := map[string]struct{}{}

	for _, r := range records {
		totalSeverity += r.SeverityScore
		if r.IsSafeRoute {
			safeRouteIncidents++
		}
		if _, ok := seenTypes[r.CrimeType]; !ok {
			seenTypes[r.CrimeType] = struct{}{}
			summary.CrimeTypesNearby = append(summary.CrimeTypesNearby, r.CrimeType)
		}
	}

	summary.IncidentCount = len(records)
	summary.AvgSeverityScore = totalSeverity / float64(len(records))
	summary.PercentSafeIncidents = float64(safeRouteIncidents) / float64(len(records)) * 100

	return summary
}

// CrimeSource provides incident records inside a bounding box.
type CrimeSource interface {
	NearbyCrimeLogs(box schema.BoundingBox, limit int) ([]schema.CrimeLog, error)
}

// IncidentAggregator summarizes historical incidents around a
// coordinate. It never fails: a broken source degrades to the neutral
// summary.
type IncidentAggregator struct {
	crimes   CrimeSource
	radiusKm float64
}

func NewIncidentAggregator(crimes CrimeSource) *IncidentAggregator {
	return &IncidentAggregator{
		crimes:   crimes,
		radiusKm: DefaultRadiusKm,
	}
}

// Nearby looks up and summarizes incident records around a point.
func (a *IncidentAggregator) Nearby(loc schema.Location) IncidentSummary {
	records, err := a.crimes.NearbyCrimeLogs(BoundsAround(loc, a.radiusKm), MaxIncidentRecords)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"lat": loc.Latitude,
			"lng": loc.Longitude,
		}).Warn("incident lookup failed, using neutral summary")
		return NeutralSummary()
	}

	return Summarize(records)
}
