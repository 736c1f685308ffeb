package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DimensionUnit is the unit Dimensions are expressed in.
type DimensionUnit string

const (
	Inches      DimensionUnit = "inches"
	Centimeters DimensionUnit = "centimeters"
)

// ErrDimensionsAreNotConstructed is returned when validating zero-value Dimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError("dimensions must be created via NewDimensions")

// Dimensions is an immutable length, width and height triple.
type Dimensions struct {
	length float64
	width  float64
	height float64
	unit   DimensionUnit
	guard  guard.ConstructorGuard
}

// NewDimensions creates Dimensions. Each side must be finite and non-negative.
// An empty unit means inches.
//
// Example:
//
//	box, _ := kernel.NewDimensions(12, 10, 8, kernel.Inches)
//	fmt.Println(box) // 12x10x8 inches
func NewDimensions(length, width, height float64, unit DimensionUnit) (Dimensions, error) {
	if unit == "" {
		unit = Inches
	}
	if unit != Inches && unit != Centimeters {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("unsupported dimension unit %q", unit))
	}

	if err := errors.Join(
		validateSide("length", length),
		validateSide("width", width),
		validateSide("height", height),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		length: length,
		width:  width,
		height: height,
		unit:   unit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MustNewDimensions is NewDimensions for values known to be valid. It panics on invalid input.
func MustNewDimensions(length, width, height float64, unit DimensionUnit) Dimensions {
	d, err := NewDimensions(length, width, height, unit)
	if err != nil {
		panic(err)
	}
	return d
}

func validateSide(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidError(name)
	}
	if v < 0 {
		return errs.NewValueIsOutOfRangeError(name, v, 0, math.MaxFloat64)
	}
	return nil
}

// Length returns the length in the dimensions' unit.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the width in the dimensions' unit.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height in the dimensions' unit.
func (d Dimensions) Height() float64 {
	return d.height
}

// Unit returns the unit the sides are expressed in.
func (d Dimensions) Unit() DimensionUnit {
	return d.unit
}

// IsZero reports whether any side is zero, which makes the package unrateable.
func (d Dimensions) IsZero() bool {
	return d.length == 0 || d.width == 0 || d.height == 0
}

// IsEqual compares all sides and the unit.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.length == other.length && d.width == other.width && d.height == other.height && d.unit == other.unit
}

// String renders the dimensions as LxWxH followed by the unit.
func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g %s", d.length, d.width, d.height, d.unit)
}

// Validate checks that the Dimensions were created through NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}
