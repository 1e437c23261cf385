package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/julirosales079/parrillerosfast/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	return &entity.Order{
		ID:     "ORD_8",
		Number: 8,
		Items: []entity.CartLine{
			{
				ID:                  "1_a",
				MenuItem:            burgerItem(),
				Quantity:            2,
				Customizations:      []entity.CustomizationOption{tocineta()},
				WithFries:           true,
				SpecialInstructions: "Sin salsas",
			},
		},
		Total:         40000,
		PaymentMethod: "Efectivo",
		Status:        entity.OrderCompleted,
		Timestamp:     time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
	}
}

func testLocation() *entity.Location {
	return &entity.Location{
		Slug:         "sede-tamasagra",
		Name:         "Parrilleros Tamasagra",
		Address:      "Manzana 9A casa 1 - Tamasagra",
		Phone:        "301 222 2098",
		Whatsapp:     "+573012222098",
		Neighborhood: "Tamasagra",
	}
}

func testCustomer() CustomerInfo {
	return CustomerInfo{
		Name:         "Juan Pérez",
		Phone:        "3001234567",
		Address:      "Calle 10 # 5-23",
		Neighborhood: "Centro",
	}
}

func TestDeliveryTicketLayout(t *testing.T) {
	s := NewReceiptService()

	got := s.DeliveryTicket(testOrder(), testCustomer(), testLocation())

	want := `🍔 NUEVO PEDIDO DOMICILIO - PARRILLEROS
═══════════════════════════════════════

📋 PEDIDO #008 | 15/3/2026 14:30:00

👤 CLIENTE
Juan Pérez
📱 3001234567
📄 Sin factura

📍 ENTREGA
Calle 10 # 5-23, Centro

🛒 PRODUCTOS
1. Parrillera Clásica + Papas x2 - $40.000
   + Tocineta
   * Sin salsas

💰 DESGLOSE DE COSTOS
• Subtotal: $36.800
• INC (8%): $3.200
• TOTAL: $40.000

💳 Forma de pago: Efectivo
⏰ Tiempo estimado: 45-60 minutos

¡PROCESAR INMEDIATAMENTE!

📍 Parrilleros Tamasagra | 301 222 2098`

	assert.Equal(t, want, got)
}

func TestDeliveryTicketWithInvoice(t *testing.T) {
	s := NewReceiptService()
	customer := testCustomer()
	customer.RequiresInvoice = true
	customer.Cedula = "1085123456"
	customer.Email = "juan@example.com"

	got := s.DeliveryTicket(testOrder(), customer, testLocation())

	assert.Contains(t, got, "📄 FACTURA REQUERIDA\nCC: 1085123456 | Email: juan@example.com")
	assert.NotContains(t, got, "Sin factura")
}

func TestPickupTicketLayout(t *testing.T) {
	s := NewReceiptService()

	got := s.PickupTicket(testOrder(), testCustomer(), testLocation())

	assert.Contains(t, got, "🍔 NUEVO PEDIDO RECOGIDA - PARRILLEROS")
	assert.Contains(t, got, "🏪 RECOGIDA EN SEDE\nParrilleros Tamasagra\nManzana 9A casa 1 - Tamasagra\nTel: 301 222 2098")
	assert.Contains(t, got, "⏰ Tiempo estimado: 15-20 minutos")
	assert.Contains(t, got, "¡PREPARAR INMEDIATAMENTE!")
	assert.NotContains(t, got, "📍 ENTREGA")
}

func TestTicketNumbersMultipleItems(t *testing.T) {
	s := NewReceiptService()
	order := testOrder()
	drink := entity.MenuItem{Name: "Limonada Natural", Price: 6000}
	drink.ID = 3
	order.Items = append(order.Items, entity.CartLine{ID: "3_b", MenuItem: drink, Quantity: 3})
	order.Total = 58000

	got := s.DeliveryTicket(order, testCustomer(), testLocation())

	assert.Contains(t, got, "1. Parrillera Clásica + Papas x2 - $40.000")
	assert.Contains(t, got, "2. Limonada Natural x3 - $18.000")
	// items are separated by a blank line
	assert.Contains(t, got, "* Sin salsas\n\n2. Limonada Natural")
}

func TestWhatsappURLEncoding(t *testing.T) {
	s := NewReceiptService()

	url := s.WhatsappURL("+573012222098", "hola mundo ¿qué tal?")

	assert.True(t, strings.HasPrefix(url, "https://wa.me/+573012222098?text="), url)
	assert.Contains(t, url, "%20")
	assert.NotContains(t, url, "+573012222098?text=hola+")
}

func TestBuildInvoiceData(t *testing.T) {
	s := NewReceiptService()

	data := s.BuildInvoiceData(testOrder(), testCustomer(), testLocation())

	assert.Equal(t, 8, data.OrderNumber)
	assert.Equal(t, "Juan Pérez", data.CustomerName)
	assert.Equal(t, int64(36800), data.Subtotal)
	assert.Equal(t, int64(3200), data.IVA)
	assert.Equal(t, int64(40000), data.Total)
	assert.Equal(t, "Efectivo", data.PaymentMethod)
	assert.Empty(t, data.CustomerCedula)
	assert.Empty(t, data.CustomerEmail)

	// the JSON field carrying INC is still called iva
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"iva":3200`)
}

func TestBuildInvoiceDataWithInvoice(t *testing.T) {
	s := NewReceiptService()
	customer := testCustomer()
	customer.RequiresInvoice = true
	customer.Cedula = "1085123456"
	customer.Email = "juan@example.com"

	data := s.BuildInvoiceData(testOrder(), customer, testLocation())

	assert.True(t, data.RequiresInvoice)
	assert.Equal(t, "1085123456", data.CustomerCedula)
	assert.Equal(t, "juan@example.com", data.CustomerEmail)
}

func TestStripOptionPrefix(t *testing.T) {
	assert.Equal(t, "Tocineta", stripOptionPrefix("AD Tocineta"))
	assert.Equal(t, "Sin Cebolla", stripOptionPrefix("Sin Cebolla"))
}
