package store

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"

	"github.com/safestreets/safestreets-api/schema"
)

// SafeStreetsStoreTestSuite runs against a live postgres instance.
// Point SAFESTREETS_TEST_DB at a disposable database to enable it.
type SafeStreetsStoreTestSuite struct {
	suite.Suite
	connURI string
	ormDB   *gorm.DB
	store   *SafeStreetsStore
}

func TestSafeStreetsStoreSuite(t *testing.T) {
	connURI := os.Getenv("SAFESTREETS_TEST_DB")
	if connURI == "" {
		t.Skip("SAFESTREETS_TEST_DB not set")
	}
	suite.Run(t, &SafeStreetsStoreTestSuite{connURI: connURI})
}

func (s *SafeStreetsStoreTestSuite) SetupSuite() {
	ormDB, err := gorm.Open("postgres", s.connURI)
	if err != nil {
		s.T().Fatalf("connect test database with error: %s", err)
	}
	s.ormDB = ormDB
	s.store = NewSafeStreetsStore(ormDB)

	// make sure the test suite is run with a clean environment
	s.ormDB.DropTableIfExists(
		&schema.RouteHistory{},
		&schema.Feedback{},
		&schema.CrimeLog{},
		&schema.Account{},
	)

	if err := s.store.Setup(); err != nil {
		s.T().Fatalf("set up schema with error: %s", err)
	}
}

func (s *SafeStreetsStoreTestSuite) TearDownSuite() {
	if s.ormDB != nil {
		s.ormDB.Close()
	}
}

// TestSetupIsIdempotent ensures a second bootstrap over an existing
// schema succeeds.
func (s *SafeStreetsStoreTestSuite) TestSetupIsIdempotent() {
	s.NoError(s.store.Setup())
}

func (s *SafeStreetsStoreTestSuite) TestCreateAccountDuplicateEmail() {
	first, err := s.store.CreateAccount("Asha", "asha@example.com", "hash", "9876543210", "Female")
	s.NoError(err)
	s.NotZero(first.ID)

	_, err = s.store.CreateAccount("Asha Again", "asha@example.com", "hash", "9876543210", "Female")
	s.Equal(ErrEmailTaken, err)
}

func (s *SafeStreetsStoreTestSuite) TestSaveRouteAndListMostRecentFirst() {
	a, err := s.store.CreateAccount("Ravi", "ravi@example.com", "hash", "9876501234", "Male")
	s.NoError(err)

	source := schema.Location{Latitude: 12.9716, Longitude: 77.5946}
	destination := schema.Location{Latitude: 12.9352, Longitude: 77.6245}

	older, err := s.store.SaveRoute(a.ID, source, destination, schema.RouteDescription{"name": "Route 1"})
	s.NoError(err)

	// keep request_time strictly ordered
	time.Sleep(10 * time.Millisecond)

	newer, err := s.store.SaveRoute(a.ID, source, destination, schema.RouteDescription{"name": "Route 2"})
	s.NoError(err)

	routes, err := s.store.ListRoutes(a.ID)
	s.NoError(err)
	s.Len(routes, 2)
	s.Equal(newer.ID, routes[0].ID)
	s.Equal(older.ID, routes[1].ID)
	s.Equal(source.Latitude, routes[0].SourceLat)
	s.Equal("Route 2", routes[0].SelectedRoute["name"])
}

func (s *SafeStreetsStoreTestSuite) TestSaveRouteUnknownAccount() {
	_, err := s.store.SaveRoute(987654321,
		schema.Location{Latitude: 1, Longitude: 2},
		schema.Location{Latitude: 3, Longitude: 4},
		schema.RouteDescription{})
	s.Equal(ErrUnknownAccount, err)
}

func (s *SafeStreetsStoreTestSuite) TestFeedbackRoundTrip() {
	a, err := s.store.CreateAccount("Meera", "meera@example.com", "hash", "9998887776", "Female")
	s.NoError(err)

	f, err := s.store.CreateFeedback(a.ID, 42, 5, "well lit street")
	s.NoError(err)
	s.NotZero(f.ID)

	feedback, err := s.store.ListFeedback(a.ID)
	s.NoError(err)
	s.Len(feedback, 1)
	s.Equal(5, feedback[0].Rating)
	s.Equal(int64(42), feedback[0].SegmentID)

	_, err = s.store.CreateFeedback(987654321, 1, 3, "")
	s.Equal(ErrUnknownAccount, err)
}

func (s *SafeStreetsStoreTestSuite) TestNearbyCrimeLogs() {
	logs := make([]schema.CrimeLog, 0, 3)
	for i, inside := range []bool{true, true, false} {
		lat, lng := 12.9716, 77.5946
		if !inside {
			lat += 1.0
		}
		logs = append(logs, schema.CrimeLog{
			Latitude:      lat,
			Longitude:     lng,
			SeverityScore: float64(i + 1),
			CrimeType:     "Theft",
			ReportedAt:    time.Now(),
		})
	}

	inserted, err := s.store.InsertCrimeLogs(logs)
	s.NoError(err)
	s.Equal(3, inserted)

	box := schema.BoundingBox{
		MinLatitude:  12.96,
		MaxLatitude:  12.98,
		MinLongitude: 77.58,
		MaxLongitude: 77.61,
	}
	nearby, err := s.store.NearbyCrimeLogs(box, 200)
	s.NoError(err)
	s.Len(nearby, 2)

	for _, l := range nearby {
		s.True(l.Latitude >= box.MinLatitude && l.Latitude <= box.MaxLatitude,
			fmt.Sprintf("latitude %f outside box", l.Latitude))
	}
}
