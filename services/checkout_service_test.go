package services

import (
	"testing"

	"github.com/julirosales079/parrillerosfast/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLocations struct{ locs map[string]*entity.Location }

func (f *fakeLocations) FindBySlug(slug string) (*entity.Location, error) {
	if loc, ok := f.locs[slug]; ok {
		return loc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newCheckoutFixture(t *testing.T) (*CheckoutService, *SessionService) {
	t.Helper()
	sessions := NewSessionService(NewOrderCounter(newMemKV()))
	locations := &fakeLocations{locs: map[string]*entity.Location{
		"sede-tamasagra": testLocation(),
	}}
	svc := NewCheckoutService(locations, sessions, NewReceiptService())
	return svc, sessions
}

func deliveryIn() *DeliveryCheckoutIn {
	return &DeliveryCheckoutIn{
		Name:                     "Juan Pérez",
		Phone:                    "3001234567",
		Address:                  "Calle 10 # 5-23",
		Neighborhood:             "Centro",
		LocationSlug:             "sede-tamasagra",
		PaymentMethod:            "Efectivo",
		DataProcessingAuthorized: true,
	}
}

func fillCart(t *testing.T, sessions *SessionService, sid string) {
	t.Helper()
	agg, err := sessions.Aggregate(sid)
	require.NoError(t, err)
	agg.AddToCart(burgerItem(), 2, []entity.CustomizationOption{tocineta()}, true, "")
}

func TestCheckoutDelivery(t *testing.T) {
	svc, sessions := newCheckoutFixture(t)
	fillCart(t, sessions, "kiosk-1")

	result, err := svc.CheckoutDelivery("kiosk-1", deliveryIn())
	require.NoError(t, err)

	require.NotNil(t, result.Order)
	assert.Equal(t, entity.OrderCompleted, result.Order.Status)
	assert.Equal(t, "Efectivo", result.Order.PaymentMethod)
	assert.Equal(t, int64(40000), result.Order.Total)
	assert.Contains(t, result.Ticket, "NUEVO PEDIDO DOMICILIO")
	assert.Contains(t, result.WhatsappURL, "https://wa.me/+573012222098?text=")
	assert.Equal(t, int64(3200), result.Invoice.IVA)

	// the result is stashed for the receipt endpoints
	assert.Same(t, result, sessions.Checkout("kiosk-1"))

	// checkout does not clear the cart; that is a separate step
	agg, err := sessions.Aggregate("kiosk-1")
	require.NoError(t, err)
	assert.Len(t, agg.Lines(), 1)
}

func TestCheckoutPickupUsesStoreAddress(t *testing.T) {
	svc, sessions := newCheckoutFixture(t)
	fillCart(t, sessions, "kiosk-1")

	in := &PickupCheckoutIn{
		Name:                     "Juan Pérez",
		Phone:                    "3001234567",
		LocationSlug:             "sede-tamasagra",
		PaymentMethod:            "Tarjeta",
		DataProcessingAuthorized: true,
	}
	result, err := svc.CheckoutPickup("kiosk-1", in)
	require.NoError(t, err)

	assert.Contains(t, result.Ticket, "NUEVO PEDIDO RECOGIDA")
	assert.Equal(t, "Manzana 9A casa 1 - Tamasagra", result.Invoice.Address)
	assert.Equal(t, "Tamasagra", result.Invoice.Neighborhood)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _ := newCheckoutFixture(t)

	_, err := svc.CheckoutDelivery("kiosk-1", deliveryIn())
	assert.EqualError(t, err, "cart is empty")
}

func TestCheckoutUnknownLocation(t *testing.T) {
	svc, sessions := newCheckoutFixture(t)
	fillCart(t, sessions, "kiosk-1")

	in := deliveryIn()
	in.LocationSlug = "sede-nowhere"
	_, err := svc.CheckoutDelivery("kiosk-1", in)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCheckoutInvoiceRequiresCedulaAndEmail(t *testing.T) {
	svc, sessions := newCheckoutFixture(t)
	fillCart(t, sessions, "kiosk-1")

	in := deliveryIn()
	in.RequiresInvoice = true
	_, err := svc.CheckoutDelivery("kiosk-1", in)
	assert.EqualError(t, err, "invoice requires cedula and email")
}

func TestCheckoutRequiresDataProcessingAuthorization(t *testing.T) {
	svc, sessions := newCheckoutFixture(t)
	fillCart(t, sessions, "kiosk-1")

	in := deliveryIn()
	in.DataProcessingAuthorized = false
	_, err := svc.CheckoutDelivery("kiosk-1", in)
	assert.EqualError(t, err, "data processing authorization is required")
}
