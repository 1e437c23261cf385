package entity

import (
	"gorm.io/gorm"
)

type CustomizationOption struct {
	gorm.Model
	Name  string `json:"name"`
	Price int64  `json:"price"`

	SortOrder int `json:"sortOrder"`
}
