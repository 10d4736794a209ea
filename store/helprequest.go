package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/openrescue/rescuemap-api/schema"
)

var (
	ErrRequestNotFound = fmt.Errorf("help request not found")
)

// HelpRequestInput carries the caller-supplied fields of a new help
// request. Required-field checks happen at the API boundary; by the time
// an input reaches the store it is assumed well-formed.
type HelpRequestInput struct {
	PlaceName         string
	Phone             string
	BackupPhone       string
	NumPeople         string
	HasElderly        bool
	HasChildren       bool
	HasSick           bool
	HasPets           bool
	AdditionalMessage string
	Latitude          float64
	Longitude         float64
}

// CreateHelpRequest inserts a new help request. Status and creation time
// are assigned here, never taken from the caller.
func (s *RescueStore) CreateHelpRequest(input HelpRequestInput) (*schema.HelpRequest, error) {
	req := schema.HelpRequest{
		PlaceName:         input.PlaceName,
		Phone:             input.Phone,
		BackupPhone:       input.BackupPhone,
		NumPeople:         input.NumPeople,
		HasElderly:        input.HasElderly,
		HasChildren:       input.HasChildren,
		HasSick:           input.HasSick,
		HasPets:           input.HasPets,
		AdditionalMessage: input.AdditionalMessage,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		CreatedAt:         time.Now().UTC(),
		Status:            schema.STATUS_ACTIVE,
	}

	if err := s.ormDB.Create(&req).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("insert help request: %s (%s)", pqErr.Message, pqErr.Code)
		}
		return nil, err
	}

	return &req, nil
}

// ListActiveHelpRequests returns every request still marked active, newest
// first. There is no pagination; an emergency-local deployment stays small
// enough that a full scan of the status index is acceptable.
func (s *RescueStore) ListActiveHelpRequests() ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}

	if err := s.ormDB.
		Where("status = ?", schema.STATUS_ACTIVE).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// GetHelpRequest returns a single request by ID regardless of its status.
func (s *RescueStore) GetHelpRequest(id int64) (*schema.HelpRequest, error) {
	var req schema.HelpRequest

	if err := s.ormDB.Where("id = ?", id).First(&req).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

// ResolveHelpRequest marks a request resolved. This is the only writer of
// the status column and it only ever writes `resolved`, so the transition
// cannot run backwards. Resolving an already-resolved request matches the
// same row again and succeeds, which keeps the call safe to repeat.
func (s *RescueStore) ResolveHelpRequest(id int64) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ?", id).
		Update("status", schema.STATUS_RESOLVED)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// DeleteHelpRequest hard-deletes a request in any status.
func (s *RescueStore) DeleteHelpRequest(id int64) error {
	result := s.ormDB.Delete(schema.HelpRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}
