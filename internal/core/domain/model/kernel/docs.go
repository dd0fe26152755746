// Package kernel provides the shared domain primitives of the job marketplace.
//
// The package includes:
//   - ID: the positive numeric key assigned by the relational store
//   - UUID: a random identifier for notification events
//   - Address: the (city, district, neighborhood) triple behind a location code
//
// All primitives are immutable values and safe for concurrent use.
package kernel
