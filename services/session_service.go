package services

import (
	"sync"
)

// SessionService keeps one OrderAggregate per kiosk session and the
// latest checkout result so receipt endpoints can re-render it.
type SessionService struct {
	mu        sync.Mutex
	counter   OrderCounter
	sessions  map[string]*OrderAggregate
	checkouts map[string]*CheckoutResult

	// OnCreate runs once per new aggregate, before it is returned;
	// main wires the websocket hub subscription here.
	OnCreate func(sessionID string, agg *OrderAggregate)
}

func NewSessionService(counter OrderCounter) *SessionService {
	return &SessionService{
		counter:   counter,
		sessions:  make(map[string]*OrderAggregate),
		checkouts: make(map[string]*CheckoutResult),
	}
}

// Aggregate returns the session's cart, creating it (and reserving its
// order number) on first use.
func (s *SessionService) Aggregate(sessionID string) (*OrderAggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if agg, ok := s.sessions[sessionID]; ok {
		return agg, nil
	}
	agg, err := NewOrderAggregate(s.counter)
	if err != nil {
		return nil, err
	}
	s.sessions[sessionID] = agg
	if s.OnCreate != nil {
		s.OnCreate(sessionID, agg)
	}
	return agg, nil
}

func (s *SessionService) SetCheckout(sessionID string, result *CheckoutResult) {
	s.mu.Lock()
	s.checkouts[sessionID] = result
	s.mu.Unlock()
}

func (s *SessionService) Checkout(sessionID string) *CheckoutResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkouts[sessionID]
}
