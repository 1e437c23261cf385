package repository

import (
	"github.com/julirosales079/parrillerosfast/entity"

	"gorm.io/gorm"
)

type LocationRepository struct{ DB *gorm.DB }

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

func (r *LocationRepository) FindAll() ([]entity.Location, error) {
	var locs []entity.Location
	err := r.DB.Order("id ASC").Find(&locs).Error
	return locs, err
}

func (r *LocationRepository) FindBySlug(slug string) (*entity.Location, error) {
	var loc entity.Location
	if err := r.DB.First(&loc, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}
