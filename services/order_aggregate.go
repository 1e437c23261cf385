package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/julirosales079/parrillerosfast/entity"

	"github.com/google/uuid"
)

type CartEventType string

const (
	CartEventAdd      CartEventType = "add"
	CartEventRemove   CartEventType = "remove"
	CartEventUpdate   CartEventType = "update"
	CartEventClear    CartEventType = "clear"
	CartEventComplete CartEventType = "complete"
)

// CartEvent is pushed to observers after every mutation so displays can
// re-render without polling.
type CartEvent struct {
	Type        CartEventType     `json:"type"`
	Cart        []entity.CartLine `json:"cart"`
	Total       int64             `json:"total"`
	OrderNumber int               `json:"orderNumber"`
}

type CartObserver func(CartEvent)

// OrderAggregate owns the cart of one kiosk session: the line list, the
// cached total, the selected payment method, the order number reserved
// for this session and, after completion, the current order snapshot.
//
// All inputs are accepted as-is; validation lives in the services and
// forms above this layer. Removing or updating an unknown line is a
// no-op, never an error.
type OrderAggregate struct {
	mu            sync.Mutex
	lines         []entity.CartLine
	total         int64
	paymentMethod string
	currentOrder  *entity.Order
	orderNumber   int
	counter       OrderCounter
	observers     []CartObserver
}

// NewOrderAggregate reserves an order number for the session up front,
// so it can be shown on screen and on the WhatsApp ticket before
// checkout ever happens.
func NewOrderAggregate(counter OrderCounter) (*OrderAggregate, error) {
	n, err := counter.AllocateNext()
	if err != nil {
		return nil, err
	}
	return &OrderAggregate{counter: counter, orderNumber: n}, nil
}

// Subscribe registers an observer for cart change events.
func (a *OrderAggregate) Subscribe(obs CartObserver) {
	a.mu.Lock()
	a.observers = append(a.observers, obs)
	a.mu.Unlock()
}

// AddToCart always appends a new line; two identical configurations stay
// two separate lines. Returns the created line.
func (a *OrderAggregate) AddToCart(item entity.MenuItem, quantity int, customizations []entity.CustomizationOption, withFries bool, specialInstructions string) entity.CartLine {
	a.mu.Lock()
	line := entity.CartLine{
		ID:                  fmt.Sprintf("%d_%s", item.ID, uuid.NewString()),
		MenuItem:            item,
		Quantity:            quantity,
		Customizations:      append([]entity.CustomizationOption(nil), customizations...),
		WithFries:           withFries,
		SpecialInstructions: specialInstructions,
	}
	a.lines = append(a.lines, line)
	a.recompute()
	ev := a.event(CartEventAdd)
	a.mu.Unlock()

	a.notify(ev)
	return line
}

func (a *OrderAggregate) RemoveFromCart(lineID string) {
	a.mu.Lock()
	kept := a.lines[:0]
	for _, l := range a.lines {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	a.lines = kept
	a.recompute()
	ev := a.event(CartEventRemove)
	a.mu.Unlock()

	a.notify(ev)
}

// UpdateQuantity replaces a line's quantity; anything <= 0 removes the
// line instead.
func (a *OrderAggregate) UpdateQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		a.RemoveFromCart(lineID)
		return
	}
	a.mu.Lock()
	for i := range a.lines {
		if a.lines[i].ID == lineID {
			a.lines[i].Quantity = quantity
			break
		}
	}
	a.recompute()
	ev := a.event(CartEventUpdate)
	a.mu.Unlock()

	a.notify(ev)
}

// ClearCart empties the cart, forgets the payment method and reserves
// the next order number. The completed-order snapshot survives the
// clear so the ticket stays renderable.
func (a *OrderAggregate) ClearCart() error {
	a.mu.Lock()
	a.lines = nil
	a.paymentMethod = ""
	a.recompute()
	next, err := a.counter.AllocateNext()
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.orderNumber = next
	ev := a.event(CartEventClear)
	a.mu.Unlock()

	a.notify(ev)
	return nil
}

// CompleteOrder snapshots the cart as a completed order. Completing an
// empty cart does nothing and returns nil. The cart is left intact;
// clearing is a separate step.
func (a *OrderAggregate) CompleteOrder() *entity.Order {
	a.mu.Lock()
	if len(a.lines) == 0 {
		a.mu.Unlock()
		return nil
	}
	items := make([]entity.CartLine, len(a.lines))
	for i, l := range a.lines {
		items[i] = l.Clone()
	}
	order := entity.Order{
		ID:            fmt.Sprintf("ORD_%d", a.orderNumber),
		Number:        a.orderNumber,
		Items:         items,
		Total:         a.total,
		PaymentMethod: a.paymentMethod,
		Status:        entity.OrderCompleted,
		Timestamp:     time.Now(),
	}
	a.currentOrder = &order
	ev := a.event(CartEventComplete)
	a.mu.Unlock()

	a.notify(ev)
	return &order
}

func (a *OrderAggregate) SetPaymentMethod(method string) {
	a.mu.Lock()
	a.paymentMethod = method
	a.mu.Unlock()
}

func (a *OrderAggregate) PaymentMethod() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paymentMethod
}

// Lines returns a copy of the current cart lines.
func (a *OrderAggregate) Lines() []entity.CartLine {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]entity.CartLine(nil), a.lines...)
}

func (a *OrderAggregate) Total() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

func (a *OrderAggregate) OrderNumber() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.orderNumber
}

// CurrentOrder returns the snapshot from the last CompleteOrder, or nil.
func (a *OrderAggregate) CurrentOrder() *entity.Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentOrder
}

// recompute refreshes the cached total. Callers hold the mutex.
func (a *OrderAggregate) recompute() {
	a.total = CartTotal(a.lines)
}

// event builds a change event from current state. Callers hold the mutex.
func (a *OrderAggregate) event(t CartEventType) CartEvent {
	return CartEvent{
		Type:        t,
		Cart:        append([]entity.CartLine(nil), a.lines...),
		Total:       a.total,
		OrderNumber: a.orderNumber,
	}
}

func (a *OrderAggregate) notify(ev CartEvent) {
	a.mu.Lock()
	obs := append([]CartObserver(nil), a.observers...)
	a.mu.Unlock()
	for _, o := range obs {
		o(ev)
	}
}
