package commands

import (
	"errors"
	"slices"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignBatchTagsCommandIsNotConstructed = errors.New(
		"AssignBatchTagsCommand must be created via NewAssignBatchTagsCommand constructor",
	)
)

// AssignBatchTagsCommand applies product-type batch tags to a set of already listed orders.
type AssignBatchTagsCommand struct {
	orders []*order.Order
	guard  guard.ConstructorGuard
}

// NewAssignBatchTagsCommand creates the command. Every order must be constructed.
func NewAssignBatchTagsCommand(orders []*order.Order) (AssignBatchTagsCommand, error) {
	var errList []error
	for _, o := range orders {
		errList = append(errList, o.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return AssignBatchTagsCommand{}, errs.NewValueIsInvalidErrorWithCause("orders", err)
	}
	return AssignBatchTagsCommand{orders: slices.Clone(orders), guard: guard.NewConstructorGuard()}, nil
}

func (c AssignBatchTagsCommand) Orders() []*order.Order {
	return slices.Clone(c.orders)
}

// Validate ensures the command was created through the constructor.
func (c AssignBatchTagsCommand) Validate() error {
	return c.guard.Validate(ErrAssignBatchTagsCommandIsNotConstructed)
}
