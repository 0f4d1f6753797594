package store

import (
	"errors"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/safestreets/safestreets-api/schema"
)

var (
	// ErrEmailTaken is returned when a registration hits the unique
	// constraint on users.email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUnknownAccount is returned when a write references a user
	// that does not exist.
	ErrUnknownAccount = errors.New("user does not exist")
)

// pq error codes we map to narrower failures
const (
	pqUniqueViolation = "23505"
	pqFKViolation     = "23503"
	pqDuplicateObject = "42710"
	pqDuplicateTable  = "42P07"
)

// safestreets main datastore
type SafeStreetsCore interface {
	Ping() error
	DBVersion() (string, error)
	Setup() error

	// Accounts
	CreateAccount(name, email, passwordHash, phone, gender string) (*schema.Account, error)
	GetAccount(id int64) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	TouchLastLogin(id int64) error

	// Route history
	SaveRoute(accountID int64, source, destination schema.Location, selected schema.RouteDescription) (*schema.RouteHistory, error)
	ListRoutes(accountID int64) ([]schema.RouteHistory, error)
	RecentRoutes(accountID int64, limit int) ([]schema.RouteHistory, error)

	// Crime logs
	NearbyCrimeLogs(box schema.BoundingBox, limit int) ([]schema.CrimeLog, error)
	InsertCrimeLogs(logs []schema.CrimeLog) (int, error)

	// Feedback
	CreateFeedback(accountID, segmentID int64, rating int, comment string) (*schema.Feedback, error)
	ListFeedback(accountID int64) ([]schema.Feedback, error)
	RecentFeedback(accountID int64, limit int) ([]schema.Feedback, error)
}

// SafeStreetsStore is an implementation of SafeStreetsCore
type SafeStreetsStore struct {
	ormDB *gorm.DB
}

func NewSafeStreetsStore(ormDB *gorm.DB) *SafeStreetsStore {
	return &SafeStreetsStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *SafeStreetsStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// DBVersion reports the server version string of the underlying
// database.
func (s *SafeStreetsStore) DBVersion() (string, error) {
	var version string
	if err := s.ormDB.Raw("SELECT version()").Row().Scan(&version); err != nil {
		return "", err
	}
	return version, nil
}

// Setup creates the four tables if they are missing and wires the
// cascade-delete foreign keys from users to its dependent rows. It is
// safe to call repeatedly.
func (s *SafeStreetsStore) Setup() error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := tx.AutoMigrate(
		&schema.Account{},
		&schema.CrimeLog{},
		&schema.RouteHistory{},
		&schema.Feedback{},
	).Error; err != nil {
		return err
	}

	if err := addCascadeFK(tx, &schema.RouteHistory{}); err != nil {
		return err
	}
	if err := addCascadeFK(tx, &schema.Feedback{}); err != nil {
		return err
	}

	return tx.Commit().Error
}

func addCascadeFK(tx *gorm.DB, model interface{}) error {
	err := tx.Model(model).AddForeignKey("user_id", "users(user_id)", "CASCADE", "CASCADE").Error
	if isAlreadyExists(err) {
		return nil
	}
	return err
}

func isAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == pqDuplicateObject || pqErr.Code == pqDuplicateTable
	}
	return false
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}

func isFKViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == pqFKViolation
	}
	return false
}
