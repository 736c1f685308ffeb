// Package commands contains the operations that change state on the shipping platform.
// Every command follows the same pattern: a command struct built by its constructor and
// guarded against zero values, and a handler whose Handle validates the command before
// doing any remote work.
//
// The only state commands change is order tags. Weight, dimensions, carrier and billing
// decisions stay on the in-memory aggregate and in the run report.
package commands
