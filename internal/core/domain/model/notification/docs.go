// Package notification defines the events published when a job application
// changes state, and the Notification records consumers keep for recipients.
//
// Event is a closed tagged variant: every event has one of the Type values
// JOB_APPLIED, JOB_ACCEPTED or JOB_DENIED and the same fixed field set
// (id, jobId, customerId, ownerId, occurredAt). Decoding refuses unknown tags,
// so consumers can switch exhaustively on Type.
//
// Wire form:
//
//	{"id":"3f1c...","type":"JOB_APPLIED","jobId":42,"customerId":7,"ownerId":3,"occurredAt":"2024-05-01T10:00:00Z"}
package notification
