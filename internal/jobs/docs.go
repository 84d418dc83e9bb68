// Package jobs provides scheduled background tasks for the car wash backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules carry a seconds field.
//
// # Available Jobs
//
// 1. ChangeRelayJob - Publishes outbox rows (row_changes) to NATS, RabbitMQ and
// the websocket hub. Runs on a short poll and on every LISTEN notification.
// 2. TokenReconciliationJob - Walks the token pool and repairs tokens left
// inconsistent by an interrupted write.
// 3. ChangePurgeJob - Deletes published outbox rows past their retention.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(relayHandler, reconcileHandler, purgeHandler, jobs.DefaultConfig(), logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
//	go listener.Listen(ctx, jobManager.RelayNow)
//
// # Error Handling
//
// - Relay failures are logged and the batch stays in the outbox for the next pass
// - Ambiguous token ownership is logged as a warning and left for staff to resolve
// - Failed job starts will stop any already running jobs
package jobs
