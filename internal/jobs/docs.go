// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DeliveryProgressJob lists every booked cargo and re-derives its delivery from the
// handling history recorded so far. Misdirection and arrival are published by the
// command handler it drives.
//
// # Usage
//
//	job := jobs.NewDeliveryProgressJob(getAllCargosHandler, deriveHandler, "*/10 * * * * *", logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field.
//
// # Error Handling
//
// - A cargo that fails to update is logged and the pass continues with the next one
// - Failed job starts stop any already running jobs
package jobs
