package http

import (
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// DishData is the dish resource as it travels in request and response bodies.
// Price is left undecoded on input so the price rule sees what was sent.
type DishData struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	ImageURL    string `json:"image_url"`
}

type DishRequest struct {
	Data DishData `json:"data"`
}

// OrderLineData is one entry of an order's dishes list.
type OrderLineData struct {
	DishID   string `json:"dishId"`
	Quantity any    `json:"quantity"`
}

// OrderData is the order resource in bodies. Dishes stays raw on input:
// absent means missing, anything that is not a list counts as an empty one.
type OrderData struct {
	ID           string `json:"id,omitempty"`
	DeliverTo    string `json:"deliverTo"`
	MobileNumber string `json:"mobileNumber"`
	Status       string `json:"status,omitempty"`
	Dishes       any    `json:"dishes"`
}

type OrderRequest struct {
	Data OrderData `json:"data"`
}

// Envelope wraps every successful response body.
type Envelope struct {
	Data any `json:"data"`
}

// ErrorBody is the body of every failed response.
type ErrorBody struct {
	Error string `json:"error"`
}

func (d DishData) toInput() commands.DishInput {
	return commands.DishInput{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	}
}

func (d OrderData) toInput() commands.OrderInput {
	return commands.OrderInput{
		ID:           d.ID,
		DeliverTo:    d.DeliverTo,
		MobileNumber: d.MobileNumber,
		Status:       d.Status,
		Dishes:       toLineInputs(d.Dishes),
	}
}

func toLineInputs(raw any) []order.LineInput {
	if !kernel.IsPresent(raw) {
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		return []order.LineInput{}
	}

	lines := make([]order.LineInput, 0, len(items))
	for _, item := range items {
		var line order.LineInput
		if fields, isObject := item.(map[string]any); isObject {
			line.DishID, _ = fields["dishId"].(string)
			line.Quantity = fields["quantity"]
		}
		lines = append(lines, line)
	}
	return lines
}

func dishData(d queries.DishResponse) DishData {
	return DishData{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	}
}

func orderData(o queries.OrderResponse) OrderData {
	lines := make([]OrderLineData, 0, len(o.Dishes))
	for _, line := range o.Dishes {
		lines = append(lines, OrderLineData{DishID: line.DishID, Quantity: line.Quantity})
	}

	return OrderData{
		ID:           o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Status:       o.Status,
		Dishes:       lines,
	}
}
