// Package report records what a triage run decided, one OrderOutcome per order.
//
// A Run is built by the batch driver while it works, then handed to the run history
// and printed or served as JSON. Nothing in a Run is read back by the decision logic.
package report
