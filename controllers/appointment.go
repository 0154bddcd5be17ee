package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/randevum/randevu-app/availability"
	"github.com/randevum/randevu-app/db"
	"github.com/randevum/randevu-app/models"
	"github.com/randevum/randevu-app/notify"
	"github.com/randevum/randevu-app/redis"
	"github.com/randevum/randevu-app/utils"
)

var dispatcher *notify.Dispatcher

// SetDispatcher wires the shared notification dispatcher into the
// handlers; called once from main.
func SetDispatcher(d *notify.Dispatcher) {
	dispatcher = d
}

type createAppointmentInput struct {
	BusinessID    uint                 `json:"business_id"`
	StaffID       uint                 `json:"staff_id"`
	CustomerID    uint                 `json:"customer_id"`
	ServiceID     uint                 `json:"service_id"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

// GetAppointment godoc
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Service").Preload("Staff").Preload("Customer").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment books a slot and triggers the confirmation message.
// The confirmation outcome rides along in the response; a gateway
// failure does not undo the booking, the caller may retry the send.
func CreateAppointment(c *fiber.Ctx) error {
	var input createAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	date, err := utils.ParseClientDate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
			Error:   err.Error(),
		})
	}
	if date.Before(utils.Midnight(time.Now())) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot book a past date",
		})
	}

	var business models.Business
	if err := db.DB.First(&business, input.BusinessID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Business not found",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	hours := availability.ParseWorkingHours(business.WorkingHours)
	slots := availability.ResolveSlots(date, hours, business.SlotIntervalMinutes, time.Now())
	if !containsSlot(slots, input.Time) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available",
		})
	}

	appointment := models.Appointment{
		BusinessID:    input.BusinessID,
		StaffID:       input.StaffID,
		CustomerID:    input.CustomerID,
		ServiceID:     input.ServiceID,
		Date:          date,
		TimeLabel:     input.Time,
		Price:         service.Price,
		PaymentMethod: input.PaymentMethod,
	}
	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	redis.InvalidateSlots(business.ID, date.Format("2006-01-02"))

	confirmation := notify.DispatchResult{Outcome: notify.OutcomeDeclined, Reason: "dispatcher not configured"}
	if dispatcher != nil {
		confirmation, err = dispatcher.SendConfirmation(appointment.ID)
		if err != nil {
			log.Printf("Confirmation dispatch failed for appointment %d: %v", appointment.ID, err)
		}
	}

	// Best-effort heads-up email to the business; a failure never
	// affects the booking.
	go func(businessName, email string, a models.Appointment) {
		if email == "" {
			return
		}
		body := fmt.Sprintf("New appointment booked.\nDate: %s\nTime: %s\nService: %s",
			utils.FormatMessageDate(a.Date), a.TimeLabel, service.Name)
		if err := utils.SendEmail(email, "New appointment - "+businessName, body); err != nil {
			log.Printf("Failed to send booking email for appointment %d: %v", a.ID, err)
		}
	}(business.Name, business.Email, appointment)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"appointment":  appointment,
		"confirmation": confirmation,
	})
}

// SendConfirmation re-triggers the confirmation message for one
// appointment, e.g. after a gateway failure during booking.
func SendConfirmation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment id",
		})
	}

	result, err := dispatcher.SendConfirmation(uint(id))
	if result.Outcome == notify.OutcomeError {
		status := fiber.StatusBadGateway
		if result.Reason == "appointment not found" || result.Reason == "customer not found" {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"outcome": result.Outcome,
			"reason":  result.Reason,
			"error":   err.Error(),
		})
	}
	return c.JSON(result)
}

func containsSlot(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
