package services

import (
	"errors"

	"github.com/julirosales079/parrillerosfast/entity"
)

// LocationFinder is the slice of the location repository checkout needs.
type LocationFinder interface {
	FindBySlug(slug string) (*entity.Location, error)
}

type CheckoutService struct {
	Locations LocationFinder
	Sessions  *SessionService
	Receipts  *ReceiptService
}

func NewCheckoutService(locations LocationFinder, sessions *SessionService, receipts *ReceiptService) *CheckoutService {
	return &CheckoutService{Locations: locations, Sessions: sessions, Receipts: receipts}
}

type DeliveryCheckoutIn struct {
	Name                     string `json:"name" binding:"required"`
	Phone                    string `json:"phone" binding:"required"`
	Address                  string `json:"address" binding:"required"`
	Neighborhood             string `json:"neighborhood" binding:"required"`
	LocationSlug             string `json:"locationSlug" binding:"required"`
	PaymentMethod            string `json:"paymentMethod" binding:"required"`
	RequiresInvoice          bool   `json:"requiresInvoice"`
	Cedula                   string `json:"cedula"`
	Email                    string `json:"email"`
	DataProcessingAuthorized bool   `json:"dataProcessingAuthorized"`
}

type PickupCheckoutIn struct {
	Name                     string `json:"name" binding:"required"`
	Phone                    string `json:"phone" binding:"required"`
	LocationSlug             string `json:"locationSlug" binding:"required"`
	PaymentMethod            string `json:"paymentMethod" binding:"required"`
	RequiresInvoice          bool   `json:"requiresInvoice"`
	Cedula                   string `json:"cedula"`
	Email                    string `json:"email"`
	DataProcessingAuthorized bool   `json:"dataProcessingAuthorized"`
}

// CheckoutResult carries everything the confirmation screen needs: the
// snapshot, the kitchen ticket, the wa.me link and the invoice payload
// for PDF/print.
type CheckoutResult struct {
	Order       *entity.Order `json:"order"`
	Ticket      string        `json:"ticket"`
	WhatsappURL string        `json:"whatsappUrl"`
	Invoice     InvoiceData   `json:"invoice"`
}

// CheckoutDelivery validates the delivery form, completes the order and
// renders the delivery ticket. Mirrors the kiosk form rules: every
// contact field is required, data processing must be authorized, and an
// invoice request needs cedula and email.
func (s *CheckoutService) CheckoutDelivery(sessionID string, in *DeliveryCheckoutIn) (*CheckoutResult, error) {
	if err := validateInvoiceFields(in.RequiresInvoice, in.Cedula, in.Email); err != nil {
		return nil, err
	}
	if !in.DataProcessingAuthorized {
		return nil, errors.New("data processing authorization is required")
	}
	loc, err := s.Locations.FindBySlug(in.LocationSlug)
	if err != nil {
		return nil, err
	}

	customer := CustomerInfo{
		Name:            in.Name,
		Phone:           in.Phone,
		Address:         in.Address,
		Neighborhood:    in.Neighborhood,
		RequiresInvoice: in.RequiresInvoice,
		Cedula:          in.Cedula,
		Email:           in.Email,
	}
	order, err := s.complete(sessionID, in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	ticket := s.Receipts.DeliveryTicket(order, customer, loc)
	result := &CheckoutResult{
		Order:       order,
		Ticket:      ticket,
		WhatsappURL: s.Receipts.WhatsappURL(loc.Whatsapp, ticket),
		Invoice:     s.Receipts.BuildInvoiceData(order, customer, loc),
	}
	s.Sessions.SetCheckout(sessionID, result)
	return result, nil
}

// CheckoutPickup is the pickup-at-store variant; the store address
// replaces the delivery block on the ticket.
func (s *CheckoutService) CheckoutPickup(sessionID string, in *PickupCheckoutIn) (*CheckoutResult, error) {
	if err := validateInvoiceFields(in.RequiresInvoice, in.Cedula, in.Email); err != nil {
		return nil, err
	}
	if !in.DataProcessingAuthorized {
		return nil, errors.New("data processing authorization is required")
	}
	loc, err := s.Locations.FindBySlug(in.LocationSlug)
	if err != nil {
		return nil, err
	}

	customer := CustomerInfo{
		Name:            in.Name,
		Phone:           in.Phone,
		Address:         loc.Address,
		Neighborhood:    loc.Neighborhood,
		RequiresInvoice: in.RequiresInvoice,
		Cedula:          in.Cedula,
		Email:           in.Email,
	}
	order, err := s.complete(sessionID, in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	ticket := s.Receipts.PickupTicket(order, customer, loc)
	result := &CheckoutResult{
		Order:       order,
		Ticket:      ticket,
		WhatsappURL: s.Receipts.WhatsappURL(loc.Whatsapp, ticket),
		Invoice:     s.Receipts.BuildInvoiceData(order, customer, loc),
	}
	s.Sessions.SetCheckout(sessionID, result)
	return result, nil
}

func (s *CheckoutService) complete(sessionID, paymentMethod string) (*entity.Order, error) {
	agg, err := s.Sessions.Aggregate(sessionID)
	if err != nil {
		return nil, err
	}
	agg.SetPaymentMethod(paymentMethod)
	order := agg.CompleteOrder()
	if order == nil {
		return nil, errors.New("cart is empty")
	}
	return order, nil
}

func validateInvoiceFields(requiresInvoice bool, cedula, email string) error {
	if requiresInvoice && (cedula == "" || email == "") {
		return errors.New("invoice requires cedula and email")
	}
	return nil
}
