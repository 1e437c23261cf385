package services

import (
	"testing"

	"github.com/julirosales079/parrillerosfast/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMenu struct {
	items map[uint]*entity.MenuItem
	opts  map[uint]entity.CustomizationOption
}

func (f *fakeMenu) FindByID(id uint) (*entity.MenuItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenu) OptionsByIDs(ids []uint) ([]entity.CustomizationOption, error) {
	var out []entity.CustomizationOption
	for _, id := range ids {
		if opt, ok := f.opts[id]; ok {
			out = append(out, opt)
		}
	}
	return out, nil
}

func newCartFixture(t *testing.T) *CartService {
	t.Helper()
	burger := burgerItem()
	drink := entity.MenuItem{Name: "Gaseosa Personal", Price: 4000}
	drink.ID = 2
	menu := &fakeMenu{
		items: map[uint]*entity.MenuItem{1: &burger, 2: &drink},
		opts:  map[uint]entity.CustomizationOption{10: tocineta()},
	}
	sessions := NewSessionService(NewOrderCounter(newMemKV()))
	return NewCartService(menu, sessions)
}

func TestCartServiceAdd(t *testing.T) {
	svc := newCartFixture(t)

	line, err := svc.Add("kiosk-1", &AddToCartIn{
		MenuItemID: 1,
		Quantity:   2,
		OptionIDs:  []uint{10},
		WithFries:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, int64(40000), line.LineTotal())

	view, err := svc.Get("kiosk-1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(40000), view.Total)
	assert.Equal(t, 1, view.OrderNumber)
}

func TestCartServiceAddDefaultsQuantityToOne(t *testing.T) {
	svc := newCartFixture(t)

	line, err := svc.Add("kiosk-1", &AddToCartIn{MenuItemID: 2, Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}

func TestCartServiceAddUnknownItem(t *testing.T) {
	svc := newCartFixture(t)

	_, err := svc.Add("kiosk-1", &AddToCartIn{MenuItemID: 99, Quantity: 1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartServiceAddOptionsOnNonCustomizable(t *testing.T) {
	svc := newCartFixture(t)

	_, err := svc.Add("kiosk-1", &AddToCartIn{MenuItemID: 2, Quantity: 1, OptionIDs: []uint{10}})
	assert.EqualError(t, err, "menu item is not customizable")
}

func TestCartServiceAddInvalidOptionIDs(t *testing.T) {
	svc := newCartFixture(t)

	_, err := svc.Add("kiosk-1", &AddToCartIn{MenuItemID: 1, Quantity: 1, OptionIDs: []uint{10, 99}})
	assert.EqualError(t, err, "invalid customization options")
}

func TestCartServiceUpdateRemoveClear(t *testing.T) {
	svc := newCartFixture(t)

	line, err := svc.Add("kiosk-1", &AddToCartIn{MenuItemID: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity("kiosk-1", line.ID, 3))
	view, _ := svc.Get("kiosk-1")
	assert.Equal(t, int64(45000), view.Total)

	require.NoError(t, svc.RemoveItem("kiosk-1", line.ID))
	view, _ = svc.Get("kiosk-1")
	assert.Empty(t, view.Lines)

	// clearing advances the session's order number
	require.NoError(t, svc.Clear("kiosk-1"))
	view, _ = svc.Get("kiosk-1")
	assert.Equal(t, 2, view.OrderNumber)
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	svc := newCartFixture(t)

	_, err := svc.Add("kiosk-1", &AddToCartIn{MenuItemID: 1, Quantity: 1})
	require.NoError(t, err)

	view, err := svc.Get("kiosk-2")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	// each session reserves its own number
	assert.Equal(t, 2, view.OrderNumber)
}
