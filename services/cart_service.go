package services

import (
	"errors"

	"github.com/julirosales079/parrillerosfast/entity"
)

// MenuFinder is the slice of the menu repository the cart needs.
type MenuFinder interface {
	FindByID(id uint) (*entity.MenuItem, error)
	OptionsByIDs(ids []uint) ([]entity.CustomizationOption, error)
}

type CartService struct {
	Menu     MenuFinder
	Sessions *SessionService
}

func NewCartService(menu MenuFinder, sessions *SessionService) *CartService {
	return &CartService{Menu: menu, Sessions: sessions}
}

type AddToCartIn struct {
	MenuItemID          uint   `json:"menuItemId" binding:"required"`
	Quantity            int    `json:"quantity" binding:"min=1"`
	OptionIDs           []uint `json:"optionIds"`
	WithFries           bool   `json:"withFries"`
	SpecialInstructions string `json:"specialInstructions"`
}

type CartView struct {
	Lines       []entity.CartLine `json:"items"`
	Total       int64             `json:"total"`
	OrderNumber int               `json:"orderNumber"`
}

func (s *CartService) Get(sessionID string) (*CartView, error) {
	agg, err := s.Sessions.Aggregate(sessionID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Lines:       agg.Lines(),
		Total:       agg.Total(),
		OrderNumber: agg.OrderNumber(),
	}, nil
}

// Add resolves the menu item and customization options from the catalog
// and appends a line to the session cart.
func (s *CartService) Add(sessionID string, in *AddToCartIn) (*entity.CartLine, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	item, err := s.Menu.FindByID(in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if len(in.OptionIDs) > 0 && !item.Customizable {
		return nil, errors.New("menu item is not customizable")
	}

	opts, err := s.Menu.OptionsByIDs(in.OptionIDs)
	if err != nil {
		return nil, err
	}
	if len(opts) != len(in.OptionIDs) {
		return nil, errors.New("invalid customization options")
	}

	agg, err := s.Sessions.Aggregate(sessionID)
	if err != nil {
		return nil, err
	}
	line := agg.AddToCart(*item, in.Quantity, opts, in.WithFries, in.SpecialInstructions)
	return &line, nil
}

func (s *CartService) UpdateQuantity(sessionID, lineID string, quantity int) error {
	agg, err := s.Sessions.Aggregate(sessionID)
	if err != nil {
		return err
	}
	agg.UpdateQuantity(lineID, quantity)
	return nil
}

func (s *CartService) RemoveItem(sessionID, lineID string) error {
	agg, err := s.Sessions.Aggregate(sessionID)
	if err != nil {
		return err
	}
	agg.RemoveFromCart(lineID)
	return nil
}

// Clear empties the cart and reserves the next order number.
func (s *CartService) Clear(sessionID string) error {
	agg, err := s.Sessions.Aggregate(sessionID)
	if err != nil {
		return err
	}
	return agg.ClearCart()
}
