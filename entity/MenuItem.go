package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`

	// price when the item is bundled with fries; nil when the bundle
	// does not exist for this item
	PriceWithFries *int64 `json:"priceWithFries,omitempty"`

	Picture      string `json:"picture"`
	Category     string `json:"category" gorm:"index"`
	Customizable bool   `json:"customizable"`

	Badges []string `json:"badges,omitempty" gorm:"serializer:json"`
}

// UnitBase returns the base price for one unit, honouring the fries
// bundle when it exists.
func (m MenuItem) UnitBase(withFries bool) int64 {
	if withFries && m.PriceWithFries != nil {
		return *m.PriceWithFries
	}
	return m.Price
}
