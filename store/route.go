package store

import (
	"time"

	"github.com/safestreets/safestreets-api/schema"
)

// SaveRoute persists a selected route for a user. The selected route
// payload is stored verbatim.
func (s *SafeStreetsStore) SaveRoute(accountID int64, source, destination schema.Location, selected schema.RouteDescription) (*schema.RouteHistory, error) {
	r := schema.RouteHistory{
		AccountID:      accountID,
		SourceLat:      source.Latitude,
		SourceLng:      source.Longitude,
		DestinationLat: destination.Latitude,
		DestinationLng: destination.Longitude,
		RequestTime:    time.Now(),
		SelectedRoute:  selected,
	}

	if err := s.ormDB.Create(&r).Error; err != nil {
		if isFKViolation(err) {
			return nil, ErrUnknownAccount
		}
		return nil, err
	}

	return &r, nil
}

// ListRoutes returns all saved routes of a user, most recent first.
func (s *SafeStreetsStore) ListRoutes(accountID int64) ([]schema.RouteHistory, error) {
	routes := make([]schema.RouteHistory, 0)
	if err := s.ormDB.Where("user_id = ?", accountID).
		Order("request_time desc").Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

// RecentRoutes returns at most limit saved routes of a user, most
// recent first.
func (s *SafeStreetsStore) RecentRoutes(accountID int64, limit int) ([]schema.RouteHistory, error) {
	routes := make([]schema.RouteHistory, 0)
	if err := s.ormDB.Where("user_id = ?", accountID).
		Order("request_time desc").Limit(limit).Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}
