// Package services provides the domain services of fulfillment triage. Each service is a
// pure decision or a thin orchestration over a port, configured by an injected config struct.
//
// The package includes:
//   - Classifier: decides whether an order is routine, an edge case, or already processed
//   - PackagingEstimator: computes package weight and picks a box
//   - RateSelector: rate-shops carriers and applies service preference rules
//   - BillingAssigner: maps the chosen carrier to a billing account
//   - BatchTagger: derives product-type batch tags for pick lists
//   - SplitShipmentDetector: plans split-shipment tag changes across orders
//
// All business constants reach these services through their config structs, which the
// policy package builds from YAML.
package services
