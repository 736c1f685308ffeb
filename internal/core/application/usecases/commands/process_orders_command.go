package commands

import (
	"errors"
	"fmt"
	"slices"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrProcessOrdersCommandIsNotConstructed = errors.New(
		"ProcessOrdersCommand must be created via NewProcessOrdersCommand constructor",
	)
)

// ProcessOrdersCommand triggers one triage pass over the awaiting-shipment orders of
// the given stores.
//
// Example:
//
//	cmd, err := NewProcessOrdersCommand([]int64{427096}, false)
//	if err != nil {
//	    return err
//	}
//	run, err := handler.Handle(ctx, cmd)
type ProcessOrdersCommand struct {
	storeIDs []int64
	dryRun   bool
	guard    guard.ConstructorGuard
}

// NewProcessOrdersCommand creates the command. At least one store is required and every
// store ID must be positive. Duplicate store IDs are dropped.
//
// dryRun only labels the run report; the composition root decides whether tag writes
// actually reach the platform.
func NewProcessOrdersCommand(storeIDs []int64, dryRun bool) (ProcessOrdersCommand, error) {
	ids, err := validateStoreIDs(storeIDs)
	if err != nil {
		return ProcessOrdersCommand{}, err
	}
	return ProcessOrdersCommand{
		storeIDs: ids,
		dryRun:   dryRun,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// StoreIDs returns a copy of the stores to process.
func (c ProcessOrdersCommand) StoreIDs() []int64 {
	return slices.Clone(c.storeIDs)
}

func (c ProcessOrdersCommand) DryRun() bool {
	return c.dryRun
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrdersCommandIsNotConstructed)
}

func validateStoreIDs(storeIDs []int64) ([]int64, error) {
	if len(storeIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("storeIDs")
	}

	ids := make([]int64, 0, len(storeIDs))
	var errList []error
	for _, id := range storeIDs {
		if id <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("storeID", fmt.Errorf("%d is not greater than 0", id)))
			continue
		}
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return ids, nil
}
