package store

import (
	"time"

	"github.com/safestreets/safestreets-api/schema"
)

// CreateFeedback stores a user's rating and comment for a route
// segment.
func (s *SafeStreetsStore) CreateFeedback(accountID, segmentID int64, rating int, comment string) (*schema.Feedback, error) {
	f := schema.Feedback{
		AccountID:   accountID,
		SegmentID:   segmentID,
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: time.Now(),
	}

	if err := s.ormDB.Create(&f).Error; err != nil {
		if isFKViolation(err) {
			return nil, ErrUnknownAccount
		}
		return nil, err
	}

	return &f, nil
}

// ListFeedback returns all feedback of a user, most recent first.
func (s *SafeStreetsStore) ListFeedback(accountID int64) ([]schema.Feedback, error) {
	feedback := make([]schema.Feedback, 0)
	if err := s.ormDB.Where("user_id = ?", accountID).
		Order("submitted_at desc").Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

// RecentFeedback returns at most limit feedback entries of a user,
// most recent first.
func (s *SafeStreetsStore) RecentFeedback(accountID int64, limit int) ([]schema.Feedback, error) {
	feedback := make([]schema.Feedback, 0)
	if err := s.ormDB.Where("user_id = ?", accountID).
		Order("submitted_at desc").Limit(limit).Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
