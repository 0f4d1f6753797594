package schema

import (
	"time"
)

// Account is a registered user of the safe route service.
type Account struct {
	ID           int64      `json:"user_id" gorm:"column:user_id;primary_key"`
	Name         string     `json:"name" gorm:"type:varchar(100);not null"`
	Email        string     `json:"email" gorm:"type:varchar(150);unique_index;not null"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255);not null"`
	Phone        string     `json:"phone" gorm:"type:varchar(10);not null"`
	Gender       string     `json:"gender" gorm:"type:varchar(10);not null"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

func (Account) TableName() string {
	return "users"
}
