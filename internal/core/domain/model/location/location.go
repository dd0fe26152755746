// Package location models the immutable reference table that maps a
// (city, district, neighborhood) address to a numeric location code.
// Job postings store only the code; the address is resolved on read.
package location

import (
	"errors"
	"fmt"
	"strconv"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/errs"
)

// ErrLocationCodeIsNotConstructed is returned for a zero-value LocationCode.
var ErrLocationCodeIsNotConstructed = errors.New("LocationCode must be created via NewLocationCode constructor")

// Code is the numeric surrogate key of an address.
type Code int64

// Validate rejects non-positive codes.
func (c Code) Validate() error {
	if c <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("location code", fmt.Errorf("%d is not greater than 0", c))
	}
	return nil
}

func (c Code) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// LocationCode is one row of the reference table. Instances are read-only.
type LocationCode struct {
	code          Code
	address       kernel.Address
	isConstructed bool
}

// NewLocationCode builds a reference entry from a persisted row.
func NewLocationCode(code Code, address kernel.Address) (*LocationCode, error) {
	if err := errors.Join(code.Validate(), address.Validate()); err != nil {
		return nil, err
	}

	return &LocationCode{
		code:          code,
		address:       address,
		isConstructed: true,
	}, nil
}

func (l *LocationCode) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationCodeIsNotConstructed
	}
	return nil
}

func (l *LocationCode) Code() Code {
	return l.code
}

func (l *LocationCode) Address() kernel.Address {
	return l.address
}
