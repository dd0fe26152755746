// Package job provides the Job aggregate: a posting with an owner, content,
// price, category and a location code, flagged expired or matched over its life
// and soft-deleted rather than removed.
//
// Key business rules:
//   - Postings are created with expired = matched = false
//   - Only the owner may update, mark matched, mark expired or remove a posting
//   - A posting is listable while it is neither expired, matched nor soft-deleted
package job
