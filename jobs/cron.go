package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// BookingCompleter marks elapsed confirmed bookings as completed.
type BookingCompleter interface {
	CompleteElapsed() (int64, error)
}

var bookingCompleter BookingCompleter

// SetBookingCompleter installs the implementation used by the cron job.
func SetBookingCompleter(completer BookingCompleter) {
	bookingCompleter = completer
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron) error {
	// Completed stays become review-eligible once their check-out passes.
	_, err := c.AddFunc("0 2 * * *", func() {
		if bookingCompleter == nil {
			log.Printf("booking completer not configured, skipping run")
			return
		}
		count, err := bookingCompleter.CompleteElapsed()
		if err != nil {
			log.Printf("failed to complete elapsed bookings: %v", err)
			return
		}
		log.Printf("marked %d elapsed bookings as completed", count)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
