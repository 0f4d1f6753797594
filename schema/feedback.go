package schema

import (
	"time"
)

// Feedback is a user rating for a route segment.
type Feedback struct {
	ID          int64     `json:"feedback_id" gorm:"column:feedback_id;primary_key"`
	AccountID   int64     `json:"user_id" gorm:"column:user_id;not null"`
	SegmentID   int64     `json:"segment_id" gorm:"not null"`
	Rating      int       `json:"rating" gorm:"not null"`
	Comment     string    `json:"comment" gorm:"type:text"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
