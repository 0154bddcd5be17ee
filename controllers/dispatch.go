package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/randevum/randevu-app/notify"
	"github.com/randevum/randevu-app/utils"
)

// The /cron handlers exist for deployments where an external scheduler
// drives the sweeps instead of the in-process cron. Each returns the
// aggregate counts of its run.

// RunReminderSweep godoc
func RunReminderSweep(c *fiber.Ctx) error {
	return runSweep(c, dispatcher.SweepReminders)
}

// RunStaffDigest godoc
func RunStaffDigest(c *fiber.Ctx) error {
	return runSweep(c, dispatcher.SendStaffDigests)
}

// RunOwnerDigest godoc
func RunOwnerDigest(c *fiber.Ctx) error {
	return runSweep(c, dispatcher.SendOwnerDigests)
}

func runSweep(c *fiber.Ctx, sweep func() (notify.SweepResult, error)) error {
	result, err := sweep()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Sweep failed",
			Error:   err.Error(),
		})
	}
	return c.JSON(result)
}
