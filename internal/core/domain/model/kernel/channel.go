package kernel

import (
	"errors"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrChannelIsNotConstructed is returned when a Channel instance was not
// created through the NewChannel factory function.
var ErrChannelIsNotConstructed = errors.New("Channel must be created via NewChannel constructor")

// Channel is the sales-context partition a request operates in: a storefront,
// region or similar. It carries the pricing policy the tax calculator needs
// (whether entered prices include tax) and the default zone used by the tax
// zone strategy.
//
// Channel is a value object: immutable after construction and safe to copy.
type Channel struct {
	code               string
	currencyCode       string
	pricesIncludeTax   bool
	defaultTaxZoneCode string

	guard guard.ConstructorGuard
}

// NewChannel creates a validated Channel.
// The code and currency code are required; the default tax zone code may be
// empty, in which case the tax zone strategy falls back to the first known zone.
func NewChannel(code, currencyCode string, pricesIncludeTax bool, defaultTaxZoneCode string) (Channel, error) {
	if code == "" {
		return Channel{}, errs.NewValueIsRequiredError("channel code")
	}
	if currencyCode == "" {
		return Channel{}, errs.NewValueIsRequiredError("currency code")
	}

	return Channel{
		code:               code,
		currencyCode:       currencyCode,
		pricesIncludeTax:   pricesIncludeTax,
		defaultTaxZoneCode: defaultTaxZoneCode,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Channel was created through NewChannel.
func (c Channel) Validate() error {
	return c.guard.Validate(ErrChannelIsNotConstructed)
}

// Code returns the channel code.
func (c Channel) Code() string {
	return c.code
}

// CurrencyCode returns the ISO currency code orders in this channel are priced in.
func (c Channel) CurrencyCode() string {
	return c.currencyCode
}

// PricesIncludeTax reports whether prices entered in this channel are tax-inclusive.
func (c Channel) PricesIncludeTax() bool {
	return c.pricesIncludeTax
}

// DefaultTaxZoneCode returns the code of the zone used for tax resolution
// when no more specific zone applies. May be empty.
func (c Channel) DefaultTaxZoneCode() string {
	return c.defaultTaxZoneCode
}
