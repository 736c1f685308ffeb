package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// WeightUnit is the unit a Weight is expressed in, using the shipping platform's spelling.
type WeightUnit string

const (
	Ounces WeightUnit = "ounces"
	Pounds WeightUnit = "pounds"
	Grams  WeightUnit = "grams"
)

// ErrWeightIsNotConstructed is returned when validating a zero-value Weight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight")

// Weight is an immutable package weight.
//
// Example:
//
//	w, err := kernel.NewWeight(56, kernel.Ounces)
//	if err != nil {
//	    // negative or not a number
//	}
//	fmt.Println(w) // 56 ounces
type Weight struct {
	value float64
	unit  WeightUnit
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight. The value must be finite and not negative.
// An empty unit means ounces.
func NewWeight(value float64, unit WeightUnit) (Weight, error) {
	if unit == "" {
		unit = Ounces
	}

	if _, ok := ounceFactors()[unit]; !ok {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("unsupported weight unit %q", unit))
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Weight{}, errs.NewValueIsInvalidError("weight")
	}

	if value < 0 {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", value, 0, math.MaxFloat64)
	}

	return Weight{value: value, unit: unit, guard: guard.NewConstructorGuard()}, nil
}

// MustNewWeight is NewWeight for values known to be valid, such as policy defaults.
// It panics on invalid input.
func MustNewWeight(value float64, unit WeightUnit) Weight {
	w, err := NewWeight(value, unit)
	if err != nil {
		panic(err)
	}
	return w
}

func ounceFactors() map[WeightUnit]float64 {
	return map[WeightUnit]float64{
		Ounces: 1,
		Pounds: 16,
		Grams:  1 / 28.349523125,
	}
}

// Value returns the weight in its own unit.
func (w Weight) Value() float64 {
	return w.value
}

// Unit returns the weight's unit.
func (w Weight) Unit() WeightUnit {
	return w.unit
}

// Ounces returns the weight converted to ounces.
func (w Weight) Ounces() float64 {
	return w.value * ounceFactors()[w.unit]
}

// IsZero reports whether the weight carries no mass. Zero weights come back from the
// platform for orders nobody has weighed yet.
func (w Weight) IsZero() bool {
	return w.value == 0
}

// IsEqual compares weights by mass.
func (w Weight) IsEqual(other Weight) bool {
	return math.Abs(w.Ounces()-other.Ounces()) < 1e-9
}

// String renders the weight with its unit.
func (w Weight) String() string {
	return fmt.Sprintf("%g %s", w.value, w.unit)
}

// Validate checks that the Weight was created through NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
