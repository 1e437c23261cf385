package entity

// CartLine is one configured purchase of a menu item. It lives only in
// memory for the active kiosk session; it is never persisted.
type CartLine struct {
	ID                  string                `json:"id"`
	MenuItem            MenuItem              `json:"menuItem"`
	Quantity            int                   `json:"quantity"`
	Customizations      []CustomizationOption `json:"customizations"`
	WithFries           bool                  `json:"withFries"`
	SpecialInstructions string                `json:"specialInstructions,omitempty"`
}

// UnitPrice is the fries-aware base price plus every selected
// customization surcharge.
func (l CartLine) UnitPrice() int64 {
	unit := l.MenuItem.UnitBase(l.WithFries)
	for _, c := range l.Customizations {
		unit += c.Price
	}
	return unit
}

// LineTotal is the unit price times the quantity.
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice() * int64(l.Quantity)
}

// Clone deep-copies the line so order snapshots cannot alias cart state.
func (l CartLine) Clone() CartLine {
	cp := l
	cp.Customizations = make([]CustomizationOption, len(l.Customizations))
	copy(cp.Customizations, l.Customizations)
	if l.MenuItem.PriceWithFries != nil {
		v := *l.MenuItem.PriceWithFries
		cp.MenuItem.PriceWithFries = &v
	}
	if l.MenuItem.Badges != nil {
		cp.MenuItem.Badges = append([]string(nil), l.MenuItem.Badges...)
	}
	return cp
}
