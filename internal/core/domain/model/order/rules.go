package order

import (
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

// Field names as they appear in request bodies.
const (
	FieldID           = "id"
	FieldDeliverTo    = "deliverTo"
	FieldMobileNumber = "mobileNumber"
	FieldStatus       = "status"
	FieldDishes       = "dishes"
	FieldQuantity     = "quantity"
)

// RequireField fails when value is absent or an empty string.
func RequireField(field string, value any) error {
	if kernel.IsPresent(value) {
		return nil
	}
	return kernel.NewRuleViolation(kernel.MissingField, errs.NewValueIsRequiredError(field),
		"Order must include a %s", field)
}

// CheckIDMatchesRoute passes when the body carries no id or the route's id.
func CheckIDMatchesRoute(bodyID, routeID string) error {
	if bodyID == "" || bodyID == routeID {
		return nil
	}
	return kernel.NewRuleViolation(kernel.IDMismatch, errs.NewValueMismatchError(FieldID, routeID, bodyID),
		"Order id does not match route id. Order: %s, Route: %s.", bodyID, routeID)
}

// NotFoundError reports that no order has the given id.
func NotFoundError(id string) error {
	return kernel.NewRuleViolation(kernel.NotFound, errs.NewObjectNotFoundError("orderId", id),
		"Order %s could not be found", id)
}
