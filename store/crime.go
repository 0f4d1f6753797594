package store

import (
	"github.com/safestreets/safestreets-api/schema"
)

// NearbyCrimeLogs returns up to limit incident records whose
// coordinates fall inside the bounding box.
func (s *SafeStreetsStore) NearbyCrimeLogs(box schema.BoundingBox, limit int) ([]schema.CrimeLog, error) {
	logs := make([]schema.CrimeLog, 0)
	if err := s.ormDB.
		Where("latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?",
			box.MinLatitude, box.MaxLatitude, box.MinLongitude, box.MaxLongitude).
		Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// InsertCrimeLogs bulk-inserts incident records in one transaction.
// Either all rows land or none do.
func (s *SafeStreetsStore) InsertCrimeLogs(logs []schema.CrimeLog) (int, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer tx.Rollback()

	inserted := 0
	for i := range logs {
		if err := tx.Create(&logs[i]).Error; err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return inserted, nil
}
