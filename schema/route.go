package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// RouteDescription is the opaque route structure submitted by the
// client when a route is selected. It is stored verbatim as a JSON
// column and returned untouched on history queries.
type RouteDescription map[string]interface{}

func (d RouteDescription) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *RouteDescription) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, &d)
}

// RouteHistory is a saved route selection.
type RouteHistory struct {
	ID             int64            `json:"route_id" gorm:"column:route_id;primary_key"`
	AccountID      int64            `json:"user_id" gorm:"column:user_id;not null"`
	SourceLat      float64          `json:"source_lat" gorm:"not null"`
	SourceLng      float64          `json:"source_lng" gorm:"not null"`
	DestinationLat float64          `json:"destination_lat" gorm:"not null"`
	DestinationLng float64          `json:"destination_lng" gorm:"not null"`
	RequestTime    time.Time        `json:"request_time"`
	SelectedRoute  RouteDescription `json:"selected_route" gorm:"type:json;not null"`
}

func (RouteHistory) TableName() string {
	return "route_history"
}

// Source returns the saved origin as a Location.
func (r RouteHistory) Source() Location {
	return Location{Latitude: r.SourceLat, Longitude: r.SourceLng}
}

// Destination returns the saved destination as a Location.
func (r RouteHistory) Destination() Location {
	return Location{Latitude: r.DestinationLat, Longitude: r.DestinationLng}
}
