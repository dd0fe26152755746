// Package notice provides the Notice aggregate: an announcement with an
// author, a title and a body. Notices have no soft-delete state.
package notice
