// Package catalogrepo provides read access to catalog configuration: product
// variants, tax zones and rates, shipping methods and promotions. The pricing
// core only consumes this data, so the repository exposes no write methods;
// rows are maintained by catalog tooling outside this service.
package catalogrepo

import (
	"encoding/json"

	"commerce/internal/core/domain/model/catalog"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/promotion"
	"commerce/internal/core/domain/model/shipping"
	"commerce/internal/core/domain/model/tax"

	"github.com/google/uuid"
)

// VariantDTO represents a purchasable product variant row.
type VariantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU         string    `gorm:"uniqueIndex"`
	Name        string
	Price       int64
	TaxCategory string
}

// TableName specifies the database table name for variants.
func (VariantDTO) TableName() string {
	return "variants"
}

// TaxZoneDTO represents a tax zone row. Country codes are a small value
// list stored as JSONB.
type TaxZoneDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"uniqueIndex"`
	CountryCodes []byte    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for tax zones.
func (TaxZoneDTO) TableName() string {
	return "tax_zones"
}

// TaxRateDTO represents the rate for a tax category within a zone.
type TaxRateDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category string    `gorm:"index:idx_tax_rates_category_zone"`
	ZoneID   uuid.UUID `gorm:"type:uuid;index:idx_tax_rates_category_zone"`
	Value    float64
}

// TableName specifies the database table name for tax rates.
func (TaxRateDTO) TableName() string {
	return "tax_rates"
}

// ShippingMethodDTO represents one configured shipping method.
type ShippingMethodDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex"`
	Name        string
	Price       int64
	MinSubtotal int64
	MaxSubtotal int64
	Rank        int
}

// TableName specifies the database table name for shipping methods.
func (ShippingMethodDTO) TableName() string {
	return "shipping_methods"
}

// PromotionDTO represents a stored promotion. Conditions and actions are
// persisted as config lists and assembled via promotion.FromConfig on read.
type PromotionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code       string    `gorm:"uniqueIndex"`
	Enabled    bool      `gorm:"index"`
	Conditions []byte    `gorm:"type:jsonb"`
	Actions    []byte    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for promotions.
func (PromotionDTO) TableName() string {
	return "promotions"
}

func variantToDomain(dto VariantDTO) (catalog.Variant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Variant{}, err
	}
	return catalog.NewVariant(id, dto.SKU, dto.Name, kernel.Money(dto.Price), tax.Category(dto.TaxCategory))
}

func zoneToDomain(dto TaxZoneDTO) (tax.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return tax.Zone{}, err
	}

	var countryCodes []string
	if len(dto.CountryCodes) > 0 {
		if err := json.Unmarshal(dto.CountryCodes, &countryCodes); err != nil {
			return tax.Zone{}, err
		}
	}

	return tax.NewZone(id, dto.Code, countryCodes)
}

func rateToDomain(dto TaxRateDTO) (tax.TaxRate, error) {
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return tax.TaxRate{}, err
	}
	return tax.NewTaxRate(tax.Category(dto.Category), zoneID, dto.Value)
}

func methodToDomain(dto ShippingMethodDTO) (shipping.ShippingMethod, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shipping.ShippingMethod{}, err
	}
	return shipping.NewShippingMethod(
		id,
		dto.Code,
		dto.Name,
		kernel.Money(dto.Price),
		kernel.Money(dto.MinSubtotal),
		kernel.Money(dto.MaxSubtotal),
		dto.Rank,
	)
}

func promotionToDomain(dto PromotionDTO) (*promotion.Promotion, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var conditions []promotion.ConditionConfig
	if len(dto.Conditions) > 0 {
		if err := json.Unmarshal(dto.Conditions, &conditions); err != nil {
			return nil, err
		}
	}

	var actions []promotion.ActionConfig
	if len(dto.Actions) > 0 {
		if err := json.Unmarshal(dto.Actions, &actions); err != nil {
			return nil, err
		}
	}

	return promotion.FromConfig(id, dto.Code, conditions, actions)
}
