package ports

import (
	"context"

	"commerce/internal/core/domain/model/catalog"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/promotion"
	"commerce/internal/core/domain/model/shipping"
	"commerce/internal/core/domain/model/tax"
)

// CatalogRepository defines the read contract for catalog configuration the
// pricing core consumes: variants, tax zones and rates, shipping methods and
// active promotions. The core never writes this data.
//
// The method set deliberately covers the source interfaces of the domain
// services, so one implementation feeds the whole pipeline.
type CatalogRepository interface {
	// GetVariant retrieves a product variant by its identifier.
	GetVariant(ctx context.Context, id kernel.UUID) (catalog.Variant, error)

	// FindAllZones lists the tax zones known to the channel.
	FindAllZones(ctx context.Context) ([]tax.Zone, error)

	// FindTaxRate resolves the rate for a tax category within a zone.
	FindTaxRate(ctx context.Context, category tax.Category, zoneID kernel.UUID) (tax.TaxRate, error)

	// FindAllShippingMethods lists the configured shipping methods.
	FindAllShippingMethods(ctx context.Context) ([]shipping.ShippingMethod, error)

	// FindActivePromotions lists the promotions currently enabled, assembled
	// from their persisted condition and action configs.
	FindActivePromotions(ctx context.Context) ([]*promotion.Promotion, error)
}
