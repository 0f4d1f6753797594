package store

import (
	"time"

	"github.com/safestreets/safestreets-api/schema"
)

// CreateAccount registers a new user. The credential must already be
// hashed by the caller.
func (s *SafeStreetsStore) CreateAccount(name, email, passwordHash, phone, gender string) (*schema.Account, error) {
	a := schema.Account{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        phone,
		Gender:       gender,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns the account with the given id
func (s *SafeStreetsStore) GetAccount(id int64) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("user_id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccountByEmail returns the account registered under an email
// address. Login resolves credentials through this lookup.
func (s *SafeStreetsStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// TouchLastLogin records a successful login time for an account
func (s *SafeStreetsStore) TouchLastLogin(id int64) error {
	now := time.Now()
	return s.ormDB.Model(schema.Account{}).Where("user_id = ?", id).
		Update("last_login", &now).Error
}
