package ports

import (
	"context"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
)

// LocationRepository resolves addresses against the immutable location
// reference table. A missing mapping is always an error, never an empty result.
type LocationRepository interface {
	// Resolve maps an address to its code. Unknown addresses yield an ObjectNotFoundError.
	Resolve(ctx context.Context, address kernel.Address) (location.Code, error)

	// Lookup maps a stored code back to its address. Unknown codes yield a
	// ReferenceDataMissingError.
	Lookup(ctx context.Context, code location.Code) (*location.LocationCode, error)
}

// UserRepository is the read-only view of users this core needs.
type UserRepository interface {
	// Exists reports whether a user with the given id exists.
	Exists(ctx context.Context, id kernel.ID) (bool, error)
}
