// Package kernel provides the shared value objects of the fulfillment domain.
//
// The package includes:
//   - Weight: a non-negative package weight with its unit (ounces by default)
//   - Dimensions: package length, width and height with their unit (inches by default)
//   - RunID: a value object identifying one triage run
//
// Value objects are immutable. Their zero values are invalid and fail Validate,
// so use the constructors to create instances.
package kernel
