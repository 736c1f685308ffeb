package commands

import (
	"errors"
	"slices"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrReconcileSplitShipmentsCommandIsNotConstructed = errors.New(
		"ReconcileSplitShipmentsCommand must be created via NewReconcileSplitShipmentsCommand constructor",
	)
)

// ReconcileSplitShipmentsCommand re-derives the split-shipment tag across the awaiting-shipment
// orders of several stores. Orders from different stores going to one address count as duplicates.
type ReconcileSplitShipmentsCommand struct {
	storeIDs []int64
	dryRun   bool
	guard    guard.ConstructorGuard
}

// NewReconcileSplitShipmentsCommand creates the command. At least one positive store ID is required.
func NewReconcileSplitShipmentsCommand(storeIDs []int64, dryRun bool) (ReconcileSplitShipmentsCommand, error) {
	ids, err := validateStoreIDs(storeIDs)
	if err != nil {
		return ReconcileSplitShipmentsCommand{}, err
	}
	return ReconcileSplitShipmentsCommand{storeIDs: ids, dryRun: dryRun, guard: guard.NewConstructorGuard()}, nil
}

func (c ReconcileSplitShipmentsCommand) StoreIDs() []int64 {
	return slices.Clone(c.storeIDs)
}

func (c ReconcileSplitShipmentsCommand) DryRun() bool {
	return c.dryRun
}

// Validate ensures the command was created through the constructor.
func (c ReconcileSplitShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileSplitShipmentsCommandIsNotConstructed)
}
