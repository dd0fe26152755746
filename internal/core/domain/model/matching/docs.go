// Package matching provides the Matching aggregate, an application by a
// customer to a job posting, and the Status state machine that governs it.
//
// Key business rules:
//   - Applications start Pending
//   - The job owner moves them to Matched or Rejected, exactly once
//   - Matched and Rejected are terminal and mutually exclusive
//   - The applicant may withdraw (soft-delete) their own application
package matching
