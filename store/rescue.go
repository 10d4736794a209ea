package store

import (
	"github.com/jinzhu/gorm"

	"github.com/openrescue/rescuemap-api/schema"
)

// rescue map main datastore
type RescueCore interface {
	Ping() error

	// Help requests
	CreateHelpRequest(input HelpRequestInput) (*schema.HelpRequest, error)
	ListActiveHelpRequests() ([]schema.HelpRequest, error)
	GetHelpRequest(id int64) (*schema.HelpRequest, error)
	ResolveHelpRequest(id int64) error
	DeleteHelpRequest(id int64) error
}

// RescueStore is an implementation of RescueCore
type RescueStore struct {
	ormDB *gorm.DB
}

func NewRescueStore(ormDB *gorm.DB) *RescueStore {
	return &RescueStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *RescueStore) Ping() error {
	return s.ormDB.DB().Ping()
}
