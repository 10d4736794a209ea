package store

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"

	"github.com/openrescue/rescuemap-api/schema"
)

type HelpRequestTestSuite struct {
	suite.Suite
	connURI string
	ormDB   *gorm.DB
}

func NewHelpRequestTestSuite(connURI string) *HelpRequestTestSuite {
	return &HelpRequestTestSuite{
		connURI: connURI,
	}
}

func (s *HelpRequestTestSuite) SetupSuite() {
	db, err := gorm.Open("postgres", s.connURI)
	if err != nil {
		s.T().Fatalf("connect test database with error: %s", err)
	}
	s.ormDB = db

	// make sure the suite runs against a clean table
	if err := db.DropTableIfExists(&schema.HelpRequest{}).Error; err != nil {
		s.T().Fatal(err)
	}
	if err := db.AutoMigrate(&schema.HelpRequest{}).Error; err != nil {
		s.T().Fatal(err)
	}
}

func (s *HelpRequestTestSuite) TearDownSuite() {
	if s.ormDB != nil {
		s.ormDB.Close()
	}
}

func (s *HelpRequestTestSuite) testInput(phone string) HelpRequestInput {
	return HelpRequestInput{
		Phone:     phone,
		NumPeople: "3",
		Latitude:  7.0084,
		Longitude: 100.4768,
	}
}

func (s *HelpRequestTestSuite) TestCreateAssignsStatusAndCreationTime() {
	store := NewRescueStore(s.ormDB)

	before := time.Now().UTC()
	created, err := store.CreateHelpRequest(s.testInput("0812345678"))
	s.NoError(err)
	s.NotZero(created.ID)

	fetched, err := store.GetHelpRequest(created.ID)
	s.NoError(err)
	s.Equal(schema.STATUS_ACTIVE, fetched.Status)
	s.False(fetched.CreatedAt.Before(before.Truncate(time.Second)))
}

func (s *HelpRequestTestSuite) TestListActiveExcludesResolved() {
	store := NewRescueStore(s.ormDB)

	first, err := store.CreateHelpRequest(s.testInput("0801111111"))
	s.NoError(err)
	second, err := store.CreateHelpRequest(s.testInput("0802222222"))
	s.NoError(err)

	s.NoError(store.ResolveHelpRequest(first.ID))

	requests, err := store.ListActiveHelpRequests()
	s.NoError(err)

	for _, r := range requests {
		s.NotEqual(first.ID, r.ID, "resolved request leaked into the active list")
		s.Equal(schema.STATUS_ACTIVE, r.Status)
	}

	// newest first
	var lastSeen *time.Time
	found := false
	for _, r := range requests {
		if r.ID == second.ID {
			found = true
		}
		if lastSeen != nil {
			s.False(r.CreatedAt.After(*lastSeen), "active list is not ordered newest first")
		}
		created := r.CreatedAt
		lastSeen = &created
	}
	s.True(found)
}

func (s *HelpRequestTestSuite) TestResolveIsIdempotent() {
	store := NewRescueStore(s.ormDB)

	created, err := store.CreateHelpRequest(s.testInput("0803333333"))
	s.NoError(err)

	s.NoError(store.ResolveHelpRequest(created.ID))
	s.NoError(store.ResolveHelpRequest(created.ID))

	fetched, err := store.GetHelpRequest(created.ID)
	s.NoError(err)
	s.Equal(schema.STATUS_RESOLVED, fetched.Status)
}

func (s *HelpRequestTestSuite) TestResolveUnknownID() {
	store := NewRescueStore(s.ormDB)

	s.Equal(ErrRequestNotFound, store.ResolveHelpRequest(99999999))
}

func (s *HelpRequestTestSuite) TestDeleteTwice() {
	store := NewRescueStore(s.ormDB)

	created, err := store.CreateHelpRequest(s.testInput("0804444444"))
	s.NoError(err)

	s.NoError(store.DeleteHelpRequest(created.ID))
	s.Equal(ErrRequestNotFound, store.DeleteHelpRequest(created.ID))

	_, err = store.GetHelpRequest(created.ID)
	s.Equal(ErrRequestNotFound, err)
}

func (s *HelpRequestTestSuite) TestDeleteResolvedRequest() {
	store := NewRescueStore(s.ormDB)

	created, err := store.CreateHelpRequest(s.testInput("0805555555"))
	s.NoError(err)

	s.NoError(store.ResolveHelpRequest(created.ID))
	s.NoError(store.DeleteHelpRequest(created.ID))
}

// TestConcurrentDeleteAndResolve races a delete against a resolve on the
// same row. Whichever statement commits first wins; the loser either also
// matched a row (resolve first, then delete) or reports not-found (delete
// first). Either way the row is gone and nothing half-written remains.
func (s *HelpRequestTestSuite) TestConcurrentDeleteAndResolve() {
	store := NewRescueStore(s.ormDB)

	created, err := store.CreateHelpRequest(s.testInput("0806666666"))
	s.NoError(err)

	var wg sync.WaitGroup
	var deleteErr, resolveErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		deleteErr = store.DeleteHelpRequest(created.ID)
	}()
	go func() {
		defer wg.Done()
		resolveErr = store.ResolveHelpRequest(created.ID)
	}()
	wg.Wait()

	for _, err := range []error{deleteErr, resolveErr} {
		if err != nil {
			s.Equal(ErrRequestNotFound, err)
		}
	}
	s.False(deleteErr != nil && resolveErr != nil, "both operations reported not-found")
	s.NoError(deleteErr, "the delete statement always matches the row")

	_, err = store.GetHelpRequest(created.ID)
	s.Equal(ErrRequestNotFound, err)
}

// TestEndToEndLifecycle walks the full request lifecycle the way a map
// client would drive it.
func (s *HelpRequestTestSuite) TestEndToEndLifecycle() {
	store := NewRescueStore(s.ormDB)

	created, err := store.CreateHelpRequest(s.testInput("0812345678"))
	s.NoError(err)

	requests, err := store.ListActiveHelpRequests()
	s.NoError(err)
	seen := false
	for _, r := range requests {
		if r.ID == created.ID {
			seen = true
			s.Equal(schema.STATUS_ACTIVE, r.Status)
		}
	}
	s.True(seen)

	s.NoError(store.ResolveHelpRequest(created.ID))

	requests, err = store.ListActiveHelpRequests()
	s.NoError(err)
	for _, r := range requests {
		s.NotEqual(created.ID, r.ID)
	}

	s.NoError(store.DeleteHelpRequest(created.ID))

	_, err = store.GetHelpRequest(created.ID)
	s.Equal(ErrRequestNotFound, err)
}

func TestHelpRequestTestSuite(t *testing.T) {
	connURI := os.Getenv("RESCUEMAP_TEST_DB")
	if connURI == "" {
		t.Skip("RESCUEMAP_TEST_DB not set; skipping store integration tests")
	}

	suite.Run(t, NewHelpRequestTestSuite(connURI))
}
