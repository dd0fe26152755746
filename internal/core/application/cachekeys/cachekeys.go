// Package cachekeys names the cache entries owned by the listing and notice
// read paths. Writers use the same names to invalidate them.
package cachekeys

import "fmt"

const (
	// ActiveJobs holds the serialized active job listing.
	ActiveJobs = "jobs:all"

	// NoticePagePrefix is shared by every cached notice page.
	NoticePagePrefix = "notices:"
)

// NoticePage is the key for one (page, limit) slice of the notice list.
func NoticePage(page, limit int) string {
	return fmt.Sprintf("%s%d:%d", NoticePagePrefix, page, limit)
}
