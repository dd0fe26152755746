package kernel

import (
	"errors"
	"fmt"
	"strings"

	"jobmarket/internal/pkg/errs"
	"jobmarket/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is the human-readable (city, district, neighborhood) triple a
// location code stands for. All three parts are required; surrounding
// whitespace is trimmed so lookups against the reference table are stable.
//
// Example:
//
//	addr, err := kernel.NewAddress("Seoul", "Jongno-gu", "Cheongun-dong")
//	if err != nil {
//	    // one of the parts was blank
//	}
type Address struct { //nolint:recvcheck //using for validation
	city         string
	district     string
	neighborhood string
	guard        guard.ConstructorGuard
}

// NewAddress validates and builds an Address. Every blank part is reported.
func NewAddress(city, district, neighborhood string) (Address, error) {
	addr := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		addr.setCity(city),
		addr.setDistrict(district),
		addr.setNeighborhood(neighborhood),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate fails for a zero-value Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) City() string {
	return a.city
}

func (a Address) District() string {
	return a.district
}

func (a Address) Neighborhood() string {
	return a.neighborhood
}

func (a Address) IsEqual(other Address) bool {
	return a.city == other.city && a.district == other.district && a.neighborhood == other.neighborhood
}

func (a Address) String() string {
	return fmt.Sprintf("%s %s %s", a.city, a.district, a.neighborhood)
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setDistrict(district string) error {
	district = strings.TrimSpace(district)
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	a.district = district
	return nil
}

func (a *Address) setNeighborhood(neighborhood string) error {
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return errs.NewValueIsRequiredError("neighborhood")
	}
	a.neighborhood = neighborhood
	return nil
}
