package order

import (
	"fmt"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status string

const (
	// Pending is the initial state and the only one in which an order may be deleted.
	Pending Status = "pending"

	Preparing Status = "preparing"

	OutForDelivery Status = "out-for-delivery"

	// Delivered is terminal.
	Delivered Status = "delivered"
)

// Statuses lists the lifecycle states in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:        {},
		Preparing:      {},
		OutForDelivery: {},
		Delivered:      {},
	}
}

// getRequestableStatuses lists the values an update may write.
// Delivered is deliberately absent.
func getRequestableStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:        {},
		Preparing:      {},
		OutForDelivery: {},
	}
}

// Validate checks that s is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further change is accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateChange fails when the order is in a terminal state.
func (s Status) ValidateChange() error {
	if s.IsTerminal() {
		return errDeliveredIsImmutable()
	}
	return nil
}

// ValidateDelete fails unless the order is pending.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return kernel.NewRuleViolation(kernel.NotPendingOnDelete,
			errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a valid status to delete", s)),
			"An order cannot be deleted unless it is pending.")
	}
	return nil
}

// CheckRequestedStatus validates the status a client asks an update to write.
// An empty value means the client did not ask for a change.
func CheckRequestedStatus(requested string) error {
	if requested == "" {
		return nil
	}
	if Status(requested) == Delivered {
		return errDeliveredIsImmutable()
	}
	if _, ok := getRequestableStatuses()[Status(requested)]; !ok {
		return kernel.NewRuleViolation(kernel.InvalidStatusValue,
			errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", requested)),
			"Order must have a status of pending, preparing, out-for-delivery, delivered")
	}
	return nil
}

func errDeliveredIsImmutable() error {
	return kernel.NewRuleViolation(kernel.ImmutableDeliveredOrder,
		errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is a final status", Delivered)),
		"A delivered order cannot be changed")
}
