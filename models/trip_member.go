package models

import "gorm.io/gorm"

// TripMember role values
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// TripMember status values
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// TripMember links an email address to a trip with a role and acceptance
// status. It doubles as the invitation record: created as pending by an
// invite, flipped to accepted when the invitee joins.
type TripMember struct {
	gorm.Model

	TripID uint `gorm:"not null;index;uniqueIndex:idx_trip_invited_email" json:"tripId"`
	// UserID is a forward reference to the invited account. No handler
	// populates it yet, so it stays nullable.
	UserID *uint `gorm:"index" json:"userId,omitempty"`

	Role         string `gorm:"default:'editor';check:role IN ('owner','editor','viewer')" json:"role"`
	InvitedEmail string `gorm:"not null;uniqueIndex:idx_trip_invited_email" json:"invitedEmail"`
	Status       string `gorm:"default:'pending';check:status IN ('pending','accepted','rejected')" json:"status"`

	// Trip is joined in at read time so invitation lists can show the
	// trip's title, destination and dates without storing them twice.
	Trip *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}
