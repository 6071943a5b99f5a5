package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity type values
const (
	ActivityTypeActivity = "activity"
	ActivityTypeFlight   = "flight"
	ActivityTypeHotel    = "hotel"
	ActivityTypeFood     = "food"
)

// Trip represents a planned journey with an embedded list of activities
type Trip struct {
	gorm.Model

	Title       string    `gorm:"not null" json:"title"`
	Destination string    `gorm:"not null" json:"destination"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`

	// Activities live and die with their trip; deleting a trip removes them.
	Activities []Activity `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE" json:"activities"`
}

// Activity is a dated sub-event belonging to exactly one trip
type Activity struct {
	gorm.Model

	TripID      uint      `gorm:"not null;index" json:"tripId"`
	Title       string    `gorm:"not null" json:"title"`
	Date        time.Time `gorm:"not null" json:"date"`
	Time        string    `json:"time,omitempty"`
	Description string    `json:"description,omitempty"`
	Type        string    `gorm:"default:'activity';check:type IN ('activity','flight','hotel','food')" json:"type"`
}
