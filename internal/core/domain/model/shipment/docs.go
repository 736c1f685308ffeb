// Package shipment holds the value objects exchanged with the rating service:
// the Descriptor sent out, the Quotes that come back, and the BillingAccount
// selected for the chosen carrier.
package shipment
