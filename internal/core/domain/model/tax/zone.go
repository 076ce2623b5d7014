package tax

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrZoneIsNotConstructed is returned when a Zone instance was not created
// through the NewZone factory function.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

// Zone is a geographic grouping of countries used to resolve applicable tax
// rates and shipping eligibility. Zones are configured externally and treated
// as immutable by the pricing core.
type Zone struct {
	id           kernel.UUID
	code         string
	countryCodes []string

	guard guard.ConstructorGuard
}

// NewZone creates a validated Zone from its code and member country codes.
func NewZone(id kernel.UUID, code string, countryCodes []string) (Zone, error) {
	if err := id.Validate(); err != nil {
		return Zone{}, err
	}
	if code == "" {
		return Zone{}, errs.NewValueIsRequiredError("zone code")
	}

	return Zone{
		id:           id,
		code:         code,
		countryCodes: append([]string(nil), countryCodes...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Zone was created through NewZone.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// ID returns the zone's unique identifier.
func (z Zone) ID() kernel.UUID {
	return z.id
}

// Code returns the zone code, e.g. "europe".
func (z Zone) Code() string {
	return z.code
}

// CountryCodes returns the ISO country codes belonging to this zone.
func (z Zone) CountryCodes() []string {
	return append([]string(nil), z.countryCodes...)
}

// Contains reports whether the given country code is a member of the zone.
func (z Zone) Contains(countryCode string) bool {
	for _, c := range z.countryCodes {
		if c == countryCode {
			return true
		}
	}
	return false
}
