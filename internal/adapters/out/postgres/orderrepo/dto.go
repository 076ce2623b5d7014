// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/tax"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines, items and payments live in child tables loaded eagerly with the
// order; adjustments are small value lists stored as JSONB.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code              string     `gorm:"uniqueIndex"`
	State             string     `gorm:"index"`
	CurrencyCode      string     `gorm:"type:varchar(3)"`
	Adjustments       []byte     `gorm:"type:jsonb"`
	ShippingMethodID  *uuid.UUID `gorm:"type:uuid"`
	Shipping          int64
	CustomerID        *uuid.UUID `gorm:"type:uuid"`
	CustomerUserID    *uuid.UUID `gorm:"type:uuid;index"`
	CustomerEmail     *string
	SubTotal          int64
	SubTotalBeforeTax int64
	PlacedAt          *time.Time
	CreatedAt         time.Time      `gorm:"index"`
	Lines             []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments          []PaymentDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line row.
type OrderLineDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	VariantID        uuid.UUID `gorm:"type:uuid"`
	UnitPrice        int64
	TaxCategory      string
	TaxRate          float64
	PriceIncludesTax bool
	Items            []OrderItemDTO `gorm:"foreignKey:LineID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// OrderItemDTO represents one unit item row with its recorded adjustments.
type OrderItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineID      uuid.UUID `gorm:"type:uuid;index"`
	UnitPrice   int64
	Adjustments []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// PaymentDTO represents a payment recorded against an order.
type PaymentDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	Method  string
	Amount  int64
	State   string
}

// TableName specifies the database table name for order payments.
func (PaymentDTO) TableName() string {
	return "order_payments"
}

func marshalAdjustments(adjustments []order.Adjustment) ([]byte, error) {
	if len(adjustments) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(adjustments)
}

func unmarshalAdjustments(raw []byte) ([]order.Adjustment, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var adjustments []order.Adjustment
	if err := json.Unmarshal(raw, &adjustments); err != nil {
		return nil, err
	}
	if len(adjustments) == 0 {
		return nil, nil
	}
	return adjustments, nil
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	orderAdjustments, err := marshalAdjustments(aggregate.Adjustments())
	if err != nil {
		return OrderDTO{}, err
	}

	dto := OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Code:              aggregate.Code(),
		State:             aggregate.State().String(),
		CurrencyCode:      aggregate.CurrencyCode(),
		Adjustments:       orderAdjustments,
		Shipping:          int64(aggregate.Shipping()),
		SubTotal:          int64(aggregate.SubTotal()),
		SubTotalBeforeTax: int64(aggregate.SubTotalBeforeTax()),
		PlacedAt:          aggregate.PlacedAt(),
		CreatedAt:         aggregate.CreatedAt(),
	}

	if methodID := aggregate.ShippingMethodID(); methodID != nil {
		raw := methodID.Bytes()
		dto.ShippingMethodID = &raw
	}

	if customer := aggregate.Customer(); customer != nil {
		customerID := customer.ID().Bytes()
		email := customer.EmailAddress()
		dto.CustomerID = &customerID
		dto.CustomerEmail = &email
		if userID := customer.UserID(); userID != nil {
			raw := userID.Bytes()
			dto.CustomerUserID = &raw
		}
	}

	for _, line := range aggregate.Lines() {
		lineDTO := OrderLineDTO{
			ID:               line.ID().Bytes(),
			OrderID:          dto.ID,
			VariantID:        line.VariantID().Bytes(),
			UnitPrice:        int64(line.UnitPrice()),
			TaxCategory:      string(line.TaxCategory()),
			TaxRate:          line.TaxRate(),
			PriceIncludesTax: line.PriceIncludesTax(),
		}
		for _, item := range line.Items() {
			itemAdjustments, itemErr := marshalAdjustments(item.PendingAdjustments())
			if itemErr != nil {
				return OrderDTO{}, itemErr
			}
			lineDTO.Items = append(lineDTO.Items, OrderItemDTO{
				ID:          item.ID().Bytes(),
				LineID:      lineDTO.ID,
				UnitPrice:   int64(item.UnitPrice()),
				Adjustments: itemAdjustments,
			})
		}
		dto.Lines = append(dto.Lines, lineDTO)
	}

	for _, payment := range aggregate.Payments() {
		dto.Payments = append(dto.Payments, PaymentDTO{
			ID:      payment.ID().Bytes(),
			OrderID: dto.ID,
			Method:  payment.Method(),
			Amount:  int64(payment.Amount()),
			State:   string(payment.State()),
		})
	}

	return dto, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate graph using the Restore factories.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	state, err := order.StateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	adjustments, err := unmarshalAdjustments(dto.Adjustments)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var shippingMethodID *kernel.UUID
	if dto.ShippingMethodID != nil {
		methodID, methodErr := kernel.UUIDFromBytes((*dto.ShippingMethodID)[:])
		if methodErr != nil {
			return nil, methodErr
		}
		shippingMethodID = &methodID
	}

	customer, err := customerToDomain(dto)
	if err != nil {
		return nil, err
	}

	payments := make([]order.Payment, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		paymentID, paymentErr := kernel.UUIDFromBytes(paymentDTO.ID[:])
		if paymentErr != nil {
			return nil, paymentErr
		}
		payment, paymentErr := order.NewPayment(
			paymentID,
			paymentDTO.Method,
			kernel.Money(paymentDTO.Amount),
			order.PaymentState(paymentDTO.State),
		)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payments = append(payments, payment)
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		state,
		dto.CurrencyCode,
		lines,
		adjustments,
		shippingMethodID,
		kernel.Money(dto.Shipping),
		customer,
		payments,
		dto.CreatedAt,
		dto.PlacedAt,
	)
}

func lineToDomain(dto OrderLineDTO) (*order.OrderLine, error) {
	lineID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		itemAdjustments, itemErr := unmarshalAdjustments(itemDTO.Adjustments)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.RestoreOrderItem(itemID, kernel.Money(itemDTO.UnitPrice), itemAdjustments)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrderLine(
		lineID,
		variantID,
		kernel.Money(dto.UnitPrice),
		tax.Category(dto.TaxCategory),
		dto.TaxRate,
		dto.PriceIncludesTax,
		items,
	)
}

func customerToDomain(dto OrderDTO) (*order.Customer, error) {
	if dto.CustomerID == nil {
		return nil, nil
	}

	customerID, err := kernel.UUIDFromBytes((*dto.CustomerID)[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.CustomerUserID != nil {
		raw, userErr := kernel.UUIDFromBytes((*dto.CustomerUserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &raw
	}

	email := ""
	if dto.CustomerEmail != nil {
		email = *dto.CustomerEmail
	}

	customer, err := order.NewCustomer(customerID, email, userID)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}
