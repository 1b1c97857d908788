package dish

import (
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

// Field names as they appear in request bodies.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldImageURL    = "image_url"
)

// RequireField fails when value is absent or an empty string.
func RequireField(field string, value any) error {
	if kernel.IsPresent(value) {
		return nil
	}
	return kernel.NewRuleViolation(kernel.MissingField, errs.NewValueIsRequiredError(field),
		"Dish must include a %s", field)
}

// ParsePrice accepts only JSON numbers that are integers greater than zero.
func ParsePrice(value any) (int64, error) {
	price, err := kernel.PositiveInteger(FieldPrice, value)
	if err != nil {
		return 0, kernel.NewRuleViolation(kernel.InvalidPrice, err,
			"Dish must have a price that is an integer greater than zero")
	}
	return price, nil
}

// CheckIDMatchesRoute passes when the body carries no id or the route's id.
func CheckIDMatchesRoute(bodyID, routeID string) error {
	if bodyID == "" || bodyID == routeID {
		return nil
	}
	return kernel.NewRuleViolation(kernel.IDMismatch, errs.NewValueMismatchError(FieldID, routeID, bodyID),
		"Dish id does not match route id. Dish: %s, Route: %s", bodyID, routeID)
}

// NotFoundError reports that no dish has the given id.
func NotFoundError(id string) error {
	return kernel.NewRuleViolation(kernel.NotFound, errs.NewObjectNotFoundError("dishId", id),
		"Dish does not exist: %s.", id)
}
