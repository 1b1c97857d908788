// Package dishrepo persists the dish aggregate with GORM.
package dishrepo

import (
	"time"

	"grubdash/internal/core/domain/model/dish"
)

// DishDTO is the row of the dishes table. Seq keeps the insertion order
// that listings return.
type DishDTO struct {
	Seq         int64     `gorm:"autoIncrement;uniqueIndex;not null"`
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       int64     `gorm:"type:bigint;not null"`
	ImageURL    string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	return dish.NewDish(dto.ID, dto.Name, dto.Description, dto.Price, dto.ImageURL)
}
