package dish

import (
	"errors"

	"grubdash/internal/pkg/errs"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is a menu item. Its id is fixed at construction; every other field is
// replaced as a whole by Revise.
type Dish struct {
	id          string
	name        string
	description string
	price       int64
	imageURL    string

	isConstructed bool
}

// NewDish creates a dish, reporting every invalid argument at once.
//
// Example:
//
//	d, err := dish.NewDish(idGenerator.Next(), "Taco", "Spicy", 3, "http://x")
//	if err != nil {
//	    return err
//	}
func NewDish(id, name, description string, price int64, imageURL string) (*Dish, error) {
	d := &Dish{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setDescription(description),
		d.setPrice(price),
		d.setImageURL(imageURL),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the dish was created through NewDish.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() string {
	return d.id
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) Description() string {
	return d.description
}

// Price returns the price in the smallest currency unit.
func (d *Dish) Price() int64 {
	return d.price
}

func (d *Dish) ImageURL() string {
	return d.imageURL
}

// Revise overwrites all mutable fields. Nothing changes unless every
// argument is valid.
func (d *Dish) Revise(name, description string, price int64, imageURL string) error {
	revised := *d
	if err := errors.Join(
		revised.setName(name),
		revised.setDescription(description),
		revised.setPrice(price),
		revised.setImageURL(imageURL),
	); err != nil {
		return err
	}

	*d = revised
	return nil
}

func (d *Dish) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError(FieldName)
	}
	d.name = name
	return nil
}

func (d *Dish) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError(FieldDescription)
	}
	d.description = description
	return nil
}

func (d *Dish) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsOutOfRangeError(FieldPrice, price, 1, "unbounded")
	}
	d.price = price
	return nil
}

func (d *Dish) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError(FieldImageURL)
	}
	d.imageURL = imageURL
	return nil
}
