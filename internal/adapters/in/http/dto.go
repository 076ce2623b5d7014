package http

import (
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/shipping"
)

// ErrorResponse is the single error body shape returned by the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddItemRequest is the body of POST /order/items.
type AddItemRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// AdjustItemRequest is the body of PUT /order/items/{lineId}.
type AdjustItemRequest struct {
	Quantity int `json:"quantity"`
}

// SetShippingMethodRequest is the body of PUT /order/shipping-method.
type SetShippingMethodRequest struct {
	MethodID string `json:"method_id"`
}

// SetCustomerRequest is the body of PUT /order/customer.
type SetCustomerRequest struct {
	EmailAddress string  `json:"email_address"`
	UserID       *string `json:"user_id,omitempty"`
}

// TransitionRequest is the body of POST /order/state.
type TransitionRequest struct {
	State string `json:"state"`
}

// AddPaymentRequest is the body of POST /order/payment.
type AddPaymentRequest struct {
	Method string `json:"method"`
	Amount int64  `json:"amount"`
}

// AdjustmentResponse is one price adjustment on an order, line item or order
// total.
type AdjustmentResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// OrderLineResponse is one line of an order.
type OrderLineResponse struct {
	ID               string  `json:"id"`
	VariantID        string  `json:"variant_id"`
	UnitPrice        int64   `json:"unit_price"`
	Quantity         int     `json:"quantity"`
	TaxCategory      string  `json:"tax_category"`
	TaxRate          float64 `json:"tax_rate"`
	PriceIncludesTax bool    `json:"price_includes_tax"`
	TotalPrice       int64   `json:"total_price"`
	LineTax          int64   `json:"line_tax"`
}

// PaymentResponse is one payment recorded against an order.
type PaymentResponse struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Amount int64  `json:"amount"`
	State  string `json:"state"`
}

// CustomerResponse identifies the customer attached to an order.
type CustomerResponse struct {
	EmailAddress string  `json:"email_address"`
	UserID       *string `json:"user_id,omitempty"`
}

// OrderResponse is the full representation of an order.
type OrderResponse struct {
	ID                string               `json:"id"`
	Code              string               `json:"code"`
	State             string               `json:"state"`
	CurrencyCode      string               `json:"currency_code"`
	Lines             []OrderLineResponse  `json:"lines"`
	Adjustments       []AdjustmentResponse `json:"adjustments"`
	ShippingMethodID  *string              `json:"shipping_method_id,omitempty"`
	Shipping          int64                `json:"shipping"`
	Customer          *CustomerResponse    `json:"customer,omitempty"`
	Payments          []PaymentResponse    `json:"payments"`
	SubTotal          int64                `json:"sub_total"`
	SubTotalBeforeTax int64                `json:"sub_total_before_tax"`
	Total             int64                `json:"total"`
	PlacedAt          *time.Time           `json:"placed_at,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

// ShippingQuoteResponse is one eligible shipping method with its price.
type ShippingQuoteResponse struct {
	MethodID string `json:"method_id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
}

func orderToResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:                o.ID().String(),
		Code:              o.Code(),
		State:             o.State().String(),
		CurrencyCode:      o.CurrencyCode(),
		Lines:             make([]OrderLineResponse, 0, len(o.Lines())),
		Adjustments:       make([]AdjustmentResponse, 0, len(o.Adjustments())),
		Shipping:          int64(o.Shipping()),
		Payments:          make([]PaymentResponse, 0, len(o.Payments())),
		SubTotal:          int64(o.SubTotal()),
		SubTotalBeforeTax: int64(o.SubTotalBeforeTax()),
		Total:             int64(o.Total()),
		PlacedAt:          o.PlacedAt(),
		CreatedAt:         o.CreatedAt(),
	}

	if methodID := o.ShippingMethodID(); methodID != nil {
		id := methodID.String()
		resp.ShippingMethodID = &id
	}

	if customer := o.Customer(); customer != nil {
		c := CustomerResponse{EmailAddress: customer.EmailAddress()}
		if userID := customer.UserID(); userID != nil {
			id := userID.String()
			c.UserID = &id
		}
		resp.Customer = &c
	}

	for _, line := range o.Lines() {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ID:               line.ID().String(),
			VariantID:        line.VariantID().String(),
			UnitPrice:        int64(line.UnitPrice()),
			Quantity:         line.Quantity(),
			TaxCategory:      string(line.TaxCategory()),
			TaxRate:          line.TaxRate(),
			PriceIncludesTax: line.PriceIncludesTax(),
			TotalPrice:       int64(line.TotalPrice()),
			LineTax:          int64(line.LineTax()),
		})
	}

	for _, a := range o.Adjustments() {
		resp.Adjustments = append(resp.Adjustments, AdjustmentResponse{
			Type:        string(a.Type),
			Description: a.Description,
			Amount:      int64(a.Amount),
		})
	}

	for _, p := range o.Payments() {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:     p.ID().String(),
			Method: p.Method(),
			Amount: int64(p.Amount()),
			State:  string(p.State()),
		})
	}

	return resp
}

func quotesToResponse(quotes []shipping.Quote) []ShippingQuoteResponse {
	resp := make([]ShippingQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		resp = append(resp, ShippingQuoteResponse{
			MethodID: q.Method.ID().String(),
			Code:     q.Method.Code(),
			Name:     q.Method.Name(),
			Price:    int64(q.Price),
		})
	}
	return resp
}
