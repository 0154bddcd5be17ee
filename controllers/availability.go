package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/randevum/randevu-app/availability"
	"github.com/randevum/randevu-app/db"
	"github.com/randevum/randevu-app/models"
	"github.com/randevum/randevu-app/redis"
	"github.com/randevum/randevu-app/utils"
)

// GetAvailableSlots returns the bookable time slots of a business for
// one date. The date query param accepts both wire formats; closed or
// fully elapsed days return an empty list, never an error.
func GetAvailableSlots(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("id")
	if err != nil || businessID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid business id",
		})
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date query parameter is required",
		})
	}
	date, err := utils.ParseClientDate(dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
			Error:   err.Error(),
		})
	}

	var business models.Business
	if err := db.DB.First(&business, businessID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Business not found",
			Error:   err.Error(),
		})
	}

	cacheDate := date.Format("2006-01-02")
	if slots, ok := redis.GetCachedSlots(business.ID, cacheDate); ok {
		return c.JSON(fiber.Map{"date": cacheDate, "slots": slots})
	}

	hours := availability.ParseWorkingHours(business.WorkingHours)
	slots := availability.ResolveSlots(date, hours, business.SlotIntervalMinutes, time.Now())
	redis.CacheSlots(business.ID, cacheDate, slots)

	return c.JSON(fiber.Map{"date": cacheDate, "slots": slots})
}
