package schema

import (
	"time"
)

// CrimeLog is a historical incident record. Rows are bulk-inserted by
// the offline loader and are read-only to the API layer.
type CrimeLog struct {
	ID            int64      `json:"id" gorm:"primary_key"`
	Latitude      float64    `json:"latitude" gorm:"type:decimal(9,6);not null"`
	Longitude     float64    `json:"longitude" gorm:"type:decimal(9,6);not null"`
	SeverityScore float64    `json:"severity_score" gorm:"type:decimal(5,2)"`
	CrowdDensity  float64    `json:"crowd_density"`
	IsSafeRoute   bool       `json:"is_safe_route"`
	CrimeType     string     `json:"crime_type" gorm:"type:varchar(50)"`
	OccurredAt    *time.Time `json:"date_of_occurrence" gorm:"column:date_of_occurrence"`
	VictimAge     float64    `json:"victim_age"`
	VictimGender  string     `json:"victim_gender" gorm:"type:varchar(20)"`
	WeaponUsed    string     `json:"weapon_used" gorm:"type:varchar(50)"`
	ZoneType      string     `json:"zone_type" gorm:"type:varchar(50)"`
	Source        string     `json:"source" gorm:"type:varchar(50)"`
	SafetyScore   float64    `json:"safety_score" gorm:"type:decimal(5,2)"`
	ReportedAt    time.Time  `json:"reported_at"`
}

func (CrimeLog) TableName() string {
	return "crime_logs"
}
