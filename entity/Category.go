package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Slug string `json:"slug" gorm:"uniqueIndex"`
	Name string `json:"name"`
	Icon string `json:"icon"`

	SortOrder int `json:"sortOrder"`
}
