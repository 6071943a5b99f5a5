package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripmate/models"
	"tripmate/utils"
)

type InvitationController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewInvitationController(db *gorm.DB, logger *log.Logger) *InvitationController {
	return &InvitationController{
		DB:     db,
		Logger: logger,
	}
}

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=owner editor viewer"`
}

// InviteMember creates a pending invitation linking an email to a trip.
// No mail is sent; the notice is logged for operator visibility.
func (ic *InvitationController) InviteMember(c *fiber.Ctx) error {
	tripID, err := c.ParamsInt("tripId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trip not found.",
		})
	}

	var req InviteMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if verr := utils.ValidateStruct(req); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": verr.Fields,
		})
	}

	var trip models.Trip
	if err := ic.DB.First(&trip, tripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trip not found.",
		})
	}

	invitedEmail := strings.ToLower(req.Email)

	// Check if invitation already exists
	var existingInvite models.TripMember
	if err := ic.DB.Where("trip_id = ? AND invited_email = ?", trip.ID, invitedEmail).First(&existingInvite).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User has already been invited to this trip.",
		})
	}

	role := req.Role
	if role == "" {
		role = models.RoleEditor
	}

	invitation := models.TripMember{
		TripID:       trip.ID,
		InvitedEmail: invitedEmail,
		Role:         role,
		Status:       models.StatusPending,
	}

	if err := ic.DB.Create(&invitation).Error; err != nil {
		// Two concurrent invites for the same pair can both pass the check
		// above; the composite unique index rejects the loser, and that is
		// still a duplicate, not a server fault.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "User has already been invited to this trip.",
			})
		}
		ic.Logger.Printf("Error sending invitation: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send invitation.",
		})
	}

	// In a real app, an email would go out here.
	ic.Logger.Printf("Invitation sent to %s for trip: %s", req.Email, trip.Title)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    fmt.Sprintf("Invitation sent to %s", req.Email),
		"invitation": invitation,
	})
}

// GetUserInvitations lists the pending invitations for an email, each with
// its trip joined in. Identity is a plain query value, not a credential.
func (ic *InvitationController) GetUserInvitations(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email parameter is required",
		})
	}

	var invitations []models.TripMember
	if err := ic.DB.Preload("Trip").
		Where("invited_email = ? AND status = ?", strings.ToLower(email), models.StatusPending).
		Find(&invitations).Error; err != nil {
		ic.Logger.Printf("Error fetching invitations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch invitations.",
		})
	}

	return c.JSON(invitations)
}

// AcceptInvitation flips an invitation to accepted. Accepting one that is
// already accepted simply re-accepts it, matching the state machine
// pending -> accepted with no other transitions.
func (ic *InvitationController) AcceptInvitation(c *fiber.Ctx) error {
	invitationID, err := c.ParamsInt("invitationId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invitation not found.",
		})
	}

	var invitation models.TripMember
	if err := ic.DB.Preload("Trip").First(&invitation, invitationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invitation not found.",
		})
	}
	if invitation.Trip == nil {
		// The referenced trip was deleted out from under the invitation.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trip not found.",
		})
	}

	if err := ic.DB.Model(&invitation).Update("status", models.StatusAccepted).Error; err != nil {
		ic.Logger.Printf("Error accepting invitation: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to accept invitation.",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("You have joined the trip: %s", invitation.Trip.Title),
		"trip": fiber.Map{
			"title":       invitation.Trip.Title,
			"destination": invitation.Trip.Destination,
		},
	})
}
