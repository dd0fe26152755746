// Package jobs provides scheduled background tasks for the job marketplace.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and keep the cache-backed
// read paths warm so that readers rarely pay for a store round trip.
//
// # Available Jobs
//
// 1. ListingRefreshJob - reloads the active listing and rewrites its cache entry
// 2. NoticePageRefreshJob - reloads the first notice page at the default page size
//
// # Usage
//
//	jobManager := jobs.NewJobManager(listActiveJobsHandler, listNoticesPageHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax (seconds first) or a descriptor such
// as "@every 1m". A refresh never invalidates: it overwrites the entry with a
// fresh TTL, so writers and the refresh can race without losing data for
// longer than one TTL.
//
// # Error Handling
//
// A failed refresh is logged and retried on the next tick; the cached value,
// if any, is left as it was.
package jobs
