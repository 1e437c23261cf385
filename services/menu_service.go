package services

import (
	"github.com/julirosales079/parrillerosfast/entity"
	"github.com/julirosales079/parrillerosfast/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	return s.Repo.Categories()
}

// List filters by category and/or search query; both empty returns the
// whole menu.
func (s *MenuService) List(category, query string) ([]entity.MenuItem, error) {
	switch {
	case query != "":
		items, err := s.Repo.Search(query)
		if err != nil {
			return nil, err
		}
		if category == "" {
			return items, nil
		}
		filtered := items[:0]
		for _, it := range items {
			if it.Category == category {
				filtered = append(filtered, it)
			}
		}
		return filtered, nil
	case category != "":
		return s.Repo.FindByCategory(category)
	default:
		return s.Repo.FindAll()
	}
}

type MenuItemDetail struct {
	entity.MenuItem
	Options []entity.CustomizationOption `json:"options,omitempty"`
}

// Detail returns the item plus the add-on options it can carry.
func (s *MenuService) Detail(id uint) (*MenuItemDetail, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	detail := &MenuItemDetail{MenuItem: *item}
	if item.Customizable {
		opts, err := s.Repo.Options()
		if err != nil {
			return nil, err
		}
		detail.Options = opts
	}
	return detail, nil
}
