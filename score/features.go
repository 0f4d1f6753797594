package score

import (
	"math/rand"
	"time"
)

// FeatureColumns is the exact column order the pretrained pipeline was
// fitted with. It is sent alongside every prediction request so the
// model service can rebuild the input frame deterministically.
var FeatureColumns = []string{
	"Victim Age", "latitude", "longitude", "crowd_density", "severity_score",
	"hour", "is_night", "day_of_week",
	"City", "crime_type", "Victim Gender", "Weapon Used", "zone_type", "source",
	"is_safe_route",
}

// FeatureVector is the input row handed to the pretrained scoring
// model. Apart from the coordinates it is synthetic: the model was
// fitted on incident rows, so a candidate point is dressed up as a
// plausible incident rather than derived from the actual route.
type FeatureVector struct {
	VictimAge     float64 `json:"Victim Age"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	CrowdDensity  float64 `json:"crowd_density"`
	SeverityScore float64 `json:"severity_score"`
	Hour          float64 `json:"hour"`
	IsNight       float64 `json:"is_night"`
	DayOfWeek     float64 `json:"day_of_week"`
	City          string  `json:"City"`
	CrimeType     string  `json:"crime_type"`
	VictimGender  string  `json:"Victim Gender"`
	WeaponUsed    string  `json:"Weapon Used"`
	ZoneType      string  `json:"zone_type"`
	Source        string  `json:"source"`
	IsSafeRoute   float64 `json:"is_safe_route"`
}

// GenerateFeatures builds a feature vector for a representative point.
// The night window is 19:00 through 05:59 and the weekday is Monday-0,
// matching the encoding the model was trained with.
func GenerateFeatures(lat, lng float64, now time.Time, rnd *rand.Rand) FeatureVector {
	hour := now.Hour()

	isNight := 0.0
	if hour >= 19 || hour <= 5 {
		isNight = 1.0
	}

	return FeatureVector{
		VictimAge:     float64(10 + rnd.Intn(69)),
		Latitude:      lat,
		Longitude:     lng,
		CrowdDensity:  10 + rnd.Float64()*89,
		SeverityScore: 1 + rnd.Float64()*4,
		Hour:          float64(hour),
		IsNight:       isNight,
		DayOfWeek:     float64((int(now.Weekday()) + 6) % 7),
		City:          "Bengaluru",
		CrimeType:     "Theft",
		VictimGender:  "Other",
		WeaponUsed:    "None",
		ZoneType:      "Residential",
		Source:        "crowdsourced",
		IsSafeRoute:   float64(rnd.Intn(2)),
	}
}
