package order

import (
	"errors"
	"slices"

	"grubdash/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer order. It is the aggregate root for its lines.
//
// Invariants:
//   - id, deliverTo and mobileNumber are non-empty
//   - lines is non-empty and every quantity is positive
//   - status is one of the four lifecycle states
type Order struct {
	id           string
	deliverTo    string
	mobileNumber string
	status       Status
	lines        []Line

	isConstructed bool
}

// NewOrder creates a pending order.
//
// Example:
//
//	lines, err := order.ParseLines(input.Dishes)
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(idGenerator.Next(), "1 Main St", "555-0100", lines)
func NewOrder(id, deliverTo, mobileNumber string, lines []Line) (*Order, error) {
	return RestoreOrder(id, deliverTo, mobileNumber, Pending, lines)
}

// RestoreOrder rebuilds an order in any status, for persistence adapters and seed data.
func RestoreOrder(id, deliverTo, mobileNumber string, status Status, lines []Line) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setDeliverTo(deliverTo),
		o.setMobileNumber(mobileNumber),
		o.setStatus(status),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) DeliverTo() string {
	return o.deliverTo
}

func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

func (o *Order) Status() Status {
	return o.status
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

// Revise overwrites the delivery details and lines. A delivered order cannot
// be revised. Nothing changes unless every argument is valid.
func (o *Order) Revise(deliverTo, mobileNumber string, lines []Line) error {
	if err := o.status.ValidateChange(); err != nil {
		return err
	}

	revised := *o
	if err := errors.Join(
		revised.setDeliverTo(deliverTo),
		revised.setMobileNumber(mobileNumber),
		revised.setLines(lines),
	); err != nil {
		return err
	}

	*o = revised
	return nil
}

// ChangeStatus writes a status requested by a client. Delivered orders reject
// any change and delivered itself cannot be requested.
func (o *Order) ChangeStatus(requested Status) error {
	if err := o.status.ValidateChange(); err != nil {
		return err
	}
	if err := CheckRequestedStatus(string(requested)); err != nil {
		return err
	}
	if requested == "" {
		return errs.NewValueIsRequiredError(FieldStatus)
	}

	o.status = requested
	return nil
}

// EnsureDeletable fails unless the order is pending.
func (o *Order) EnsureDeletable() error {
	return o.status.ValidateDelete()
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError(FieldID)
	}
	o.id = id
	return nil
}

func (o *Order) setDeliverTo(deliverTo string) error {
	if deliverTo == "" {
		return errs.NewValueIsRequiredError(FieldDeliverTo)
	}
	o.deliverTo = deliverTo
	return nil
}

func (o *Order) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError(FieldMobileNumber)
	}
	o.mobileNumber = mobileNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if err := validateLines(lines); err != nil {
		return err
	}
	o.lines = slices.Clone(lines)
	return nil
}
