package schema

import (
	"time"
)

const (
	STATUS_ACTIVE   = "active"
	STATUS_RESOLVED = "resolved"
)

// HelpRequest is a geolocated call for help pinned on the map. The status
// column only ever moves forward from `active` to `resolved`; a request in
// either state can still be hard-deleted.
type HelpRequest struct {
	ID                int64     `json:"id" gorm:"primary_key"`
	PlaceName         string    `json:"place_name"`
	Phone             string    `json:"phone" gorm:"not null"`
	BackupPhone       string    `json:"backup_phone"`
	NumPeople         string    `json:"num_people" gorm:"not null"`
	HasElderly        bool      `json:"has_elderly" gorm:"not null" sql:"default:false"`
	HasChildren       bool      `json:"has_children" gorm:"not null" sql:"default:false"`
	HasSick           bool      `json:"has_sick" gorm:"not null" sql:"default:false"`
	HasPets           bool      `json:"has_pets" gorm:"not null" sql:"default:false"`
	AdditionalMessage string    `json:"additional_message"`
	Latitude          float64   `json:"latitude" gorm:"not null"`
	Longitude         float64   `json:"longitude" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at"`
	Status            string    `json:"status" gorm:"not null" sql:"default:'active'"`
}
