package cron

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/randevum/randevu-app/notify"
	"github.com/randevum/randevu-app/utils"
)

// StartCronJobs initializes the in-process scheduler for the reminder
// sweep and the two daily digests. The same jobs are exposed under
// /cron for an external scheduler; a deployment uses one or the other.
func StartCronJobs(dispatcher *notify.Dispatcher) {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New(cron.WithLocation(utils.BusinessLocation))

	// Every 5 minutes; the reminder window tolerance matches this period.
	_, err := c.AddFunc("*/5 * * * *", func() {
		result, err := dispatcher.SweepReminders()
		if err != nil {
			log.Printf("Reminder sweep failed: %v", err)
			return
		}
		log.Printf("Reminder sweep: checked=%d sent=%d skipped=%d errored=%d",
			result.Checked, result.Sent, result.Skipped, result.Errored)
	})
	if err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}

	// Staff get their itinerary before the workday starts.
	_, err = c.AddFunc("30 7 * * *", func() {
		result, err := dispatcher.SendStaffDigests()
		if err != nil {
			log.Printf("Staff digest failed: %v", err)
			return
		}
		log.Printf("Staff digest: checked=%d sent=%d skipped=%d errored=%d",
			result.Checked, result.Sent, result.Skipped, result.Errored)
	})
	if err != nil {
		log.Fatalf("Failed to add staff digest cron job: %v", err)
	}

	// Owners get the day summary after closing.
	_, err = c.AddFunc("30 21 * * *", func() {
		result, err := dispatcher.SendOwnerDigests()
		if err != nil {
			log.Printf("Owner digest failed: %v", err)
			return
		}
		log.Printf("Owner digest: checked=%d sent=%d skipped=%d errored=%d",
			result.Checked, result.Sent, result.Skipped, result.Errored)
	})
	if err != nil {
		log.Fatalf("Failed to add owner digest cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}
