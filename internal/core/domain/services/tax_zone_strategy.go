package services

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/tax"
)

// ErrNoTaxZoneAvailable is returned when no tax zone can be determined for a request.
// This occurs when the zone list is empty, which makes every price calculation
// impossible for the channel.
var ErrNoTaxZoneAvailable = errors.New("no tax zone available")

// TaxZoneStrategy determines the active tax zone for a request. The zone drives
// which tax rates apply to every price calculated within the request.
type TaxZoneStrategy interface {
	DetermineZone(ctx context.Context, rctx kernel.RequestContext, zones []tax.Zone) (tax.Zone, error)
}

// DefaultTaxZoneStrategy resolves the zone from the channel configuration:
// the channel's default tax zone wins when present, otherwise the first
// known zone is used as a fallback.
type DefaultTaxZoneStrategy struct{}

// NewDefaultTaxZoneStrategy creates a new DefaultTaxZoneStrategy instance.
func NewDefaultTaxZoneStrategy() DefaultTaxZoneStrategy {
	return DefaultTaxZoneStrategy{}
}

// DetermineZone selects the zone matching the channel's default tax zone code,
// falling back to the first zone in the list. Returns ErrNoTaxZoneAvailable
// when the list is empty.
func (s DefaultTaxZoneStrategy) DetermineZone(_ context.Context, rctx kernel.RequestContext, zones []tax.Zone) (tax.Zone, error) {
	if len(zones) == 0 {
		return tax.Zone{}, ErrNoTaxZoneAvailable
	}

	defaultCode := rctx.Channel().DefaultTaxZoneCode()
	for _, zone := range zones {
		if zone.Code() == defaultCode {
			return zone, nil
		}
	}

	return zones[0], nil
}
