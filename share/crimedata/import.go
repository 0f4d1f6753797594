package crimedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/safestreets/safestreets-api/schema"
)

// occurrenceLayout is the timestamp format of the source dataset,
// e.g. "14-03-2024 22:15".
const occurrenceLayout = "02-01-2006 15:04"

// ParseCSV reads a cleaned crime dataset and converts each row into a
// CrimeLog. Headers are matched by name after trimming whitespace, so
// column order in the file does not matter. Rows with an unparsable
// coordinate or timestamp abort the import; a missing weapon value is
// normalized to "None".
func ParseCSV(r io.Reader) ([]schema.CrimeLog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{"latitude", "longitude", "Date of Occurrence", "crime_type"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	number := func(row []string, name string) (float64, error) {
		v := field(row, name)
		if v == "" {
			return 0, nil
		}
		return strconv.ParseFloat(v, 64)
	}

	logs := make([]schema.CrimeLog, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		lat, err := number(row, "latitude")
		if err != nil {
			return nil, fmt.Errorf("line %d: bad latitude: %w", line, err)
		}
		lng, err := number(row, "longitude")
		if err != nil {
			return nil, fmt.Errorf("line %d: bad longitude: %w", line, err)
		}

		occurred, err := time.Parse(occurrenceLayout, field(row, "Date of Occurrence"))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad occurrence date: %w", line, err)
		}

		severity, err := number(row, "severity_score")
		if err != nil {
			return nil, fmt.Errorf("line %d: bad severity score: %w", line, err)
		}
		crowd, err := number(row, "crowd_density")
		if err != nil {
			return nil, fmt.Errorf("line %d: bad crowd density: %w", line, err)
		}
		age, err := number(row, "Victim Age")
		if err != nil {
			return nil, fmt.Errorf("line %d: bad victim age: %w", line, err)
		}
		safety, err := number(row, "safety_score")
		if err != nil {
			return nil, fmt.Errorf("line %d: bad safety score: %w", line, err)
		}

		weapon := field(row, "Weapon Used")
		if weapon == "" || weapon == "NaN" {
			weapon = "None"
		}

		logs = append(logs, schema.CrimeLog{
			Latitude:      lat,
			Longitude:     lng,
			SeverityScore: severity,
			CrowdDensity:  crowd,
			IsSafeRoute:   parseBool(field(row, "is_safe_route")),
			CrimeType:     field(row, "crime_type"),
			OccurredAt:    &occurred,
			VictimAge:     age,
			VictimGender:  field(row, "Victim Gender"),
			WeaponUsed:    weapon,
			ZoneType:      field(row, "zone_type"),
			Source:        field(row, "source"),
			SafetyScore:   safety,
		})
	}

	return logs, nil
}

// ImportCSV parses a dataset file and bulk-inserts it through the
// store. It returns how many rows landed.
func ImportCSV(s Inserter, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	logs, err := ParseCSV(file)
	if err != nil {
		return 0, err
	}

	return s.InsertCrimeLogs(logs)
}

// Inserter persists parsed incident records.
type Inserter interface {
	InsertCrimeLogs(logs []schema.CrimeLog) (int, error)
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "t", "yes":
		return true
	}
	return false
}
