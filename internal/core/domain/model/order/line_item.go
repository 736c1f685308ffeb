package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// DiscountSKU marks the platform's discount pseudo-line-item.
const DiscountSKU = "total-discount"

// LineItem is one ordered SKU. Quantity is at least 1; Name is optional.
type LineItem struct {
	sku      string
	name     string
	quantity int
}

// NewLineItem creates a LineItem.
//
// Parameters:
//   - sku: the product SKU as the platform reports it (may be empty for ad-hoc lines)
//   - quantity: ordered units, must be at least 1
//   - name: optional product name
func NewLineItem(sku string, quantity int, name string) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return LineItem{sku: strings.TrimSpace(sku), name: name, quantity: quantity}, nil
}

// SKU returns the line's stock keeping unit as the platform reported it.
func (l LineItem) SKU() string {
	return l.sku
}

// Name returns the product name printed on the line.
func (l LineItem) Name() string {
	return l.name
}

// Quantity returns the number of units ordered. It is always at least one.
func (l LineItem) Quantity() int {
	return l.quantity
}

// IsDiscount reports whether the line is the discount pseudo-item.
func (l LineItem) IsDiscount() bool {
	return strings.EqualFold(l.sku, DiscountSKU)
}
