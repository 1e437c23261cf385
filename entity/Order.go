package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is the immutable snapshot taken when a cart is completed. It is
// handed to the receipt renderers and never persisted.
type Order struct {
	ID            string      `json:"id"`
	Number        int         `json:"number"`
	Items         []CartLine  `json:"items"`
	Total         int64       `json:"total"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Status        OrderStatus `json:"status"`
	Timestamp     time.Time   `json:"timestamp"`
}
