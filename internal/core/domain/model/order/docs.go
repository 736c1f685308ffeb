// Package order provides the Order aggregate for fulfillment triage.
//
// An Order mirrors one awaiting-shipment order on the shipping platform. It is fetched
// read-only at the start of a run and mutated in memory while the order is triaged:
// the packaging estimate, the chosen rate and the billing account are assigned onto it,
// and tags are added as the platform confirms them.
//
// The package includes:
//   - Order: the aggregate root
//   - LineItem: one SKU and its quantity
//   - Address: the ship-to address
//   - AdvancedOptions: platform options (merged/split flag, location field, store, billing)
//   - TagID and TagSet: platform tags, held as a set
//   - Status: the platform order status
//
// Key business rules:
//   - Order IDs are positive and immutable
//   - A tag set never holds the same tag twice
//   - Discount pseudo-lines (SKU "total-discount") are not packable and are excluded from SKUs()
package order
