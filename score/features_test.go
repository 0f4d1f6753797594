package score

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFeaturesNightWindow(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	cases := map[int]float64{
		0:  1,
		5:  1,
		6:  0,
		12: 0,
		18: 0,
		19: 1,
		23: 1,
	}

	for hour, want := range cases {
		now := time.Date(2024, 3, 15, hour, 30, 0, 0, time.UTC)
		v := GenerateFeatures(12.97, 77.59, now, rnd)
		assert.Equal(t, want, v.IsNight, "wrong night flag for hour %d", hour)
		assert.Equal(t, float64(hour), v.Hour, "wrong hour")
	}
}

func TestGenerateFeaturesWeekday(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	// 2024-03-11 is a Monday
	monday := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, GenerateFeatures(0, 0, monday, rnd).DayOfWeek, "wrong weekday for Monday")
	assert.Equal(t, 6.0, GenerateFeatures(0, 0, sunday, rnd).DayOfWeek, "wrong weekday for Sunday")
}

func TestGenerateFeaturesRanges(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	now := time.Date(2024, 3, 15, 21, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		v := GenerateFeatures(12.97, 77.59, now, rnd)

		assert.Equal(t, 12.97, v.Latitude, "wrong latitude")
		assert.Equal(t, 77.59, v.Longitude, "wrong longitude")
		assert.GreaterOrEqual(t, v.VictimAge, 10.0, "victim age below range")
		assert.LessOrEqual(t, v.VictimAge, 78.0, "victim age above range")
		assert.GreaterOrEqual(t, v.CrowdDensity, 10.0, "crowd density below range")
		assert.Less(t, v.CrowdDensity, 99.0, "crowd density above range")
		assert.GreaterOrEqual(t, v.SeverityScore, 1.0, "severity below range")
		assert.Less(t, v.SeverityScore, 5.0, "severity above range")
		assert.Contains(t, []float64{0, 1}, v.IsSafeRoute, "wrong safe route flag")
		assert.Equal(t, "Bengaluru", v.City, "wrong city")
	}
}
