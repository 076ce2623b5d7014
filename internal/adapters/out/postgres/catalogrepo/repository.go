package catalogrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/catalog"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/promotion"
	"commerce/internal/core/domain/model/shipping"
	"commerce/internal/core/domain/model/tax"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetVariant retrieves a product variant by its identifier.
func (r *GormCatalogRepository) GetVariant(ctx context.Context, id kernel.UUID) (catalog.Variant, error) {
	if err := id.Validate(); err != nil {
		return catalog.Variant{}, err
	}

	var dto VariantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Variant{}, errs.NewObjectNotFoundError("variant", id.String())
		}
		return catalog.Variant{}, err
	}

	return variantToDomain(dto)
}

// FindAllZones lists the tax zones known to the channel.
func (r *GormCatalogRepository) FindAllZones(ctx context.Context) ([]tax.Zone, error) {
	var dtos []TaxZoneDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]tax.Zone, 0, len(dtos))
	for _, dto := range dtos {
		zone, err := zoneToDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

// FindTaxRate resolves the rate for a tax category within a zone.
func (r *GormCatalogRepository) FindTaxRate(
	ctx context.Context, category tax.Category, zoneID kernel.UUID,
) (tax.TaxRate, error) {
	if err := zoneID.Validate(); err != nil {
		return tax.TaxRate{}, err
	}

	var dto TaxRateDTO
	err := r.db.WithContext(ctx).
		First(&dto, "category = ? AND zone_id = ?", string(category), zoneID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tax.TaxRate{}, errs.NewObjectNotFoundError("tax rate", string(category))
		}
		return tax.TaxRate{}, err
	}

	return rateToDomain(dto)
}

// FindAllShippingMethods lists the configured shipping methods.
func (r *GormCatalogRepository) FindAllShippingMethods(ctx context.Context) ([]shipping.ShippingMethod, error) {
	var dtos []ShippingMethodDTO
	if err := r.db.WithContext(ctx).Order("rank").Find(&dtos).Error; err != nil {
		return nil, err
	}

	methods := make([]shipping.ShippingMethod, 0, len(dtos))
	for _, dto := range dtos {
		method, err := methodToDomain(dto)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	return methods, nil
}

// FindActivePromotions lists enabled promotions assembled from their
// persisted condition and action configs.
func (r *GormCatalogRepository) FindActivePromotions(ctx context.Context) ([]*promotion.Promotion, error) {
	var dtos []PromotionDTO
	if err := r.db.WithContext(ctx).Where("enabled").Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	promotions := make([]*promotion.Promotion, 0, len(dtos))
	for _, dto := range dtos {
		promo, err := promotionToDomain(dto)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, promo)
	}

	return promotions, nil
}
