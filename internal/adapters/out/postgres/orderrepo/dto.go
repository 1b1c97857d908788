// Package orderrepo persists the order aggregate with GORM. An order row owns
// its lines, stored in order_lines and kept in their submitted order.
package orderrepo

import (
	"time"

	"grubdash/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table. Seq keeps the insertion order
// that listings return.
type OrderDTO struct {
	Seq          int64          `gorm:"autoIncrement;uniqueIndex;not null"`
	ID           string         `gorm:"type:varchar(64);primaryKey"`
	DeliverTo    string         `gorm:"type:text;not null"`
	MobileNumber string         `gorm:"type:varchar(64);not null"`
	Status       string         `gorm:"type:varchar(32);not null;index"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one dish of an order. Position is the index of the line in
// the order's dishes list.
type OrderLineDTO struct {
	OrderID  string `gorm:"type:varchar(64);primaryKey"`
	Position int    `gorm:"primaryKey;autoIncrement:false"`
	DishID   string `gorm:"type:varchar(64);not null"`
	Quantity int64  `gorm:"type:bigint;not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := o.Lines()
	dtos := make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		dtos = append(dtos, OrderLineDTO{
			OrderID:  o.ID(),
			Position: i,
			DishID:   line.DishID(),
			Quantity: line.Quantity(),
		})
	}

	return OrderDTO{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Lines:        dtos,
	}
}

// toDomain expects dto.Lines sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, err := order.NewLine(l.DishID, l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, dto.DeliverTo, dto.MobileNumber, order.Status(dto.Status), lines)
}
