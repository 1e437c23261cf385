package repository

import (
	"github.com/julirosales079/parrillerosfast/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) Categories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("sort_order ASC").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByCategory(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category = ?", category).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Search matches name or description, case-insensitive.
func (r *MenuRepository) Search(query string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	like := "%" + query + "%"
	err := r.DB.
		Where("name LIKE ? COLLATE NOCASE OR description LIKE ? COLLATE NOCASE", like, like).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) Options() ([]entity.CustomizationOption, error) {
	var opts []entity.CustomizationOption
	err := r.DB.Order("sort_order ASC").Find(&opts).Error
	return opts, err
}

func (r *MenuRepository) OptionsByIDs(ids []uint) ([]entity.CustomizationOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var opts []entity.CustomizationOption
	err := r.DB.Where("id IN ?", ids).Find(&opts).Error
	return opts, err
}
