package entity

import (
	"gorm.io/gorm"
)

type Location struct {
	gorm.Model
	Slug         string `json:"slug" gorm:"uniqueIndex"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Whatsapp     string `json:"whatsapp"`
	Neighborhood string `json:"neighborhood"`

	DeliveryZones []string `json:"deliveryZones" gorm:"serializer:json"`
}
