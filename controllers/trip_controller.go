package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tripmate/models"
	"tripmate/utils"
)

// dateLayout is the wire format for all date fields.
const dateLayout = "2006-01-02"

type TripController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewTripController(db *gorm.DB, logger *log.Logger) *TripController {
	return &TripController{
		DB:     db,
		Logger: logger,
	}
}

type CreateTripRequest struct {
	Title       string `json:"title" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type AddActivityRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
	Type        string `json:"type" validate:"omitempty,oneof=activity flight hotel food"`
}

// CreateTrip inserts a new trip with an empty activity list.
func (tc *TripController) CreateTrip(c *fiber.Ctx) error {
	var req CreateTripRequest
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

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	trip := models.Trip{
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Activities:  []models.Activity{},
	}

	if err := tc.DB.Create(&trip).Error; err != nil {
		tc.Logger.Printf("Error creating a new trip: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create trip.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(trip)
}

// GetTrips returns every trip in the store with its activities.
func (tc *TripController) GetTrips(c *fiber.Ctx) error {
	var trips []models.Trip
	if err := tc.DB.Preload("Activities").Find(&trips).Error; err != nil {
		tc.Logger.Printf("Error getting trips: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch trips.",
		})
	}

	// A trip with no activities serializes as [] rather than null.
	for i := range trips {
		if trips[i].Activities == nil {
			trips[i].Activities = []models.Activity{}
		}
	}

	return c.JSON(trips)
}

// DeleteTrip removes a trip by identifier; its activities go with it.
func (tc *TripController) DeleteTrip(c *fiber.Ctx) error {
	tripID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trip not found.",
		})
	}

	var trip models.Trip
	if err := tc.DB.First(&trip, tripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trip not found.",
		})
	}

	if err := tc.DB.Delete(&trip).Error; err != nil {
		tc.Logger.Printf("Error deleting trip: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete trip.",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Trip '%s' was deleted successfully.", trip.Title),
	})
}

// AddActivity appends one activity to a trip and returns the updated trip.
// The activity date is deliberately not checked against the trip's range.
func (tc *TripController) AddActivity(c *fiber.Ctx) error {
	tripID, err := c.ParamsInt("tripId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trip not found.",
		})
	}

	var req AddActivityRequest
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
	if err := tc.DB.First(&trip, tripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trip not found.",
		})
	}

	activityType := req.Type
	if activityType == "" {
		activityType = models.ActivityTypeActivity
	}

	date, _ := time.Parse(dateLayout, req.Date)
	activity := models.Activity{
		TripID:      trip.ID,
		Title:       req.Title,
		Date:        date,
		Time:        req.Time,
		Description: req.Description,
		Type:        activityType,
	}

	if err := tc.DB.Create(&activity).Error; err != nil {
		tc.Logger.Printf("Error adding activity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add activity.",
		})
	}

	var updatedTrip models.Trip
	if err := tc.DB.Preload("Activities").First(&updatedTrip, trip.ID).Error; err != nil {
		tc.Logger.Printf("Error reloading trip after adding activity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add activity.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(updatedTrip)
}
