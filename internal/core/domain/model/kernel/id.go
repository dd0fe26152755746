package kernel

import (
	"math"
	"strconv"

	"jobmarket/internal/pkg/errs"
)

// ID is the numeric surrogate key the relational store assigns to users, job
// postings, matchings, notices and notifications. The zero ID marks an entity
// that has not been persisted yet; every persisted ID is positive.
type ID int64

// NewID validates a raw identifier coming from outside the domain (path
// parameters, headers, database rows).
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the ID refers to a persisted entity.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", int64(id), 1, int64(math.MaxInt64))
	}
	return nil
}

// IsZero reports whether the ID has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
