package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNothingToPack is returned when an order has no packable line items.
	ErrNothingToPack = errors.New("order has no packable line items")

	// ErrEmptyBoxCatalog is returned when the estimator is configured without boxes.
	ErrEmptyBoxCatalog = errors.New("box catalog is empty")
)

// DefaultUnitWeightOz applies to SKUs missing from the weight table.
const DefaultUnitWeightOz = 16.0

// BoxProfile is one shipping box. Catalogs are ordered smallest first.
type BoxProfile struct {
	Name     string  `json:"name"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	MaxItems int     `json:"maxItems"`
}

// Dimensions returns the box size in inches.
func (b BoxProfile) Dimensions() (kernel.Dimensions, error) {
	return kernel.NewDimensions(b.Length, b.Width, b.Height, kernel.Inches)
}

// String returns the box name, or its sides when it has none.
func (b BoxProfile) String() string {
	if b.Name != "" {
		return b.Name
	}
	return fmt.Sprintf("%gx%gx%g", b.Length, b.Width, b.Height)
}

// PackagingConfig configures the PackagingEstimator.
type PackagingConfig struct {
	// SKUWeightsOz maps upper-case SKUs to per-unit weight in ounces.
	SKUWeightsOz    map[string]float64
	DefaultWeightOz float64
	Boxes           []BoxProfile
	// LargeSKUPrefixes and LargeSKUs mark items that need the second-largest box.
	LargeSKUPrefixes []string
	LargeSKUs        []string
}

// PackageEstimate is the estimator's result. Weight is in ounces, dimensions in inches.
type PackageEstimate struct {
	Weight     kernel.Weight
	Dimensions kernel.Dimensions
	Box        BoxProfile
	ItemCount  int
}

// PackagingEstimator computes package weight and chooses a box from the line items.
//
// Weight is the sum of per-unit SKU weight times quantity over packable lines, with
// unmapped SKUs weighing DefaultWeightOz. A large item anywhere in the order forces the
// second-largest box; otherwise the first box whose MaxItems covers the total quantity
// wins, and orders too big for every box get the largest one.
type PackagingEstimator struct {
	cfg PackagingConfig
}

// NewPackagingEstimator validates cfg and returns an estimator.
func NewPackagingEstimator(cfg PackagingConfig) (PackagingEstimator, error) {
	if len(cfg.Boxes) == 0 {
		return PackagingEstimator{}, ErrEmptyBoxCatalog
	}
	if cfg.DefaultWeightOz <= 0 {
		cfg.DefaultWeightOz = DefaultUnitWeightOz
	}

	var errList []error
	for i, b := range cfg.Boxes {
		if _, err := b.Dimensions(); err != nil {
			errList = append(errList, fmt.Errorf("box %d: %w", i, err))
		}
		if b.MaxItems < 1 {
			errList = append(errList, errs.NewValueIsOutOfRangeError(fmt.Sprintf("box %d max items", i), b.MaxItems, 1, "unbounded"))
		}
		if i > 0 && b.MaxItems < cfg.Boxes[i-1].MaxItems {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"boxes", fmt.Errorf("box %d holds fewer items than box %d; order boxes smallest first", i, i-1)))
		}
	}
	for sku, w := range cfg.SKUWeightsOz {
		if w < 0 {
			errList = append(errList, errs.NewValueIsOutOfRangeError("weight of "+sku, w, 0, math.MaxFloat64))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return PackagingEstimator{}, err
	}

	weights := make(map[string]float64, len(cfg.SKUWeightsOz))
	for sku, w := range cfg.SKUWeightsOz {
		weights[strings.ToUpper(sku)] = w
	}
	cfg.SKUWeightsOz = weights

	return PackagingEstimator{cfg: cfg}, nil
}

// Estimate computes the package for items. Discount lines are ignored; an order with
// nothing else returns ErrNothingToPack.
func (p PackagingEstimator) Estimate(items []order.LineItem) (PackageEstimate, error) {
	var (
		totalOz    float64
		totalItems int
		large      bool
	)

	for _, it := range items {
		if it.IsDiscount() {
			continue
		}
		sku := strings.ToUpper(it.SKU())
		unit, ok := p.cfg.SKUWeightsOz[sku]
		if !ok {
			unit = p.cfg.DefaultWeightOz
		}
		totalOz += unit * float64(it.Quantity())
		totalItems += it.Quantity()
		if p.isLarge(sku) {
			large = true
		}
	}

	if totalItems == 0 {
		return PackageEstimate{}, ErrNothingToPack
	}

	box := p.chooseBox(totalItems, large)
	dims, err := box.Dimensions()
	if err != nil {
		return PackageEstimate{}, err
	}
	weight, err := kernel.NewWeight(totalOz, kernel.Ounces)
	if err != nil {
		return PackageEstimate{}, err
	}

	return PackageEstimate{
		Weight:     weight,
		Dimensions: dims,
		Box:        box,
		ItemCount:  totalItems,
	}, nil
}

func (p PackagingEstimator) isLarge(sku string) bool {
	if sku == "" {
		return false
	}
	for _, prefix := range p.cfg.LargeSKUPrefixes {
		if strings.HasPrefix(sku, strings.ToUpper(prefix)) {
			return true
		}
	}
	for _, s := range p.cfg.LargeSKUs {
		if sku == strings.ToUpper(s) {
			return true
		}
	}
	return false
}

func (p PackagingEstimator) chooseBox(totalItems int, large bool) BoxProfile {
	boxes := p.cfg.Boxes
	if large {
		if len(boxes) == 1 {
			return boxes[0]
		}
		return boxes[len(boxes)-2]
	}
	for _, b := range boxes {
		if totalItems <= b.MaxItems {
			return b
		}
	}
	return boxes[len(boxes)-1]
}
