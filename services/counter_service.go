package services

import (
	"fmt"
	"strconv"
)

// OrderNumberKey is the storage key the kiosk has always used for the
// last issued order number.
const OrderNumberKey = "parrilleros-last-order-number"

// KVStore is the minimal persistence shim the counter needs. Backed by
// the sqlite KV repository in production.
type KVStore interface {
	Get(key string) (string, error)
	Put(key, value string) error
}

// OrderCounter hands out sequential human-facing order numbers.
type OrderCounter interface {
	// AllocateNext reads the last issued number, advances it by one,
	// persists and returns it.
	AllocateNext() (int, error)
	// PeekLast returns the last issued number without advancing.
	PeekLast() (int, error)
}

type KVOrderCounter struct {
	store KVStore
	key   string
}

func NewOrderCounter(store KVStore) *KVOrderCounter {
	return &KVOrderCounter{store: store, key: OrderNumberKey}
}

func (c *KVOrderCounter) PeekLast() (int, error) {
	raw, err := c.store.Get(c.key)
	if err != nil {
		return 0, fmt.Errorf("read order counter: %w", err)
	}
	// missing or garbled value counts as "never issued"
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func (c *KVOrderCounter) AllocateNext() (int, error) {
	last, err := c.PeekLast()
	if err != nil {
		return 0, err
	}
	next := last + 1
	if err := c.store.Put(c.key, strconv.Itoa(next)); err != nil {
		return 0, fmt.Errorf("persist order counter: %w", err)
	}
	return next, nil
}

// Reset overwrites the stored counter. Staff-only escape hatch for
// re-imaged kiosks.
func (c *KVOrderCounter) Reset(value int) error {
	return c.store.Put(c.key, strconv.Itoa(value))
}
