package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/julirosales079/parrillerosfast/entity"
	"github.com/julirosales079/parrillerosfast/utils"
)

// CustomerInfo is the checkout form data a ticket is rendered from.
type CustomerInfo struct {
	Name            string
	Phone           string
	Address         string
	Neighborhood    string
	RequiresInvoice bool
	Cedula          string
	Email           string
}

// InvoiceData is the exact payload the PDF and print renderers consume.
// The iva field carries the INC value; the name is kept as-is because
// the renderer contract predates the tax rename.
type InvoiceData struct {
	OrderNumber     int               `json:"orderNumber"`
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	CustomerEmail   string            `json:"customerEmail,omitempty"`
	CustomerCedula  string            `json:"customerCedula,omitempty"`
	Address         string            `json:"address"`
	Neighborhood    string            `json:"neighborhood"`
	LocationName    string            `json:"locationName"`
	LocationAddress string            `json:"locationAddress"`
	LocationPhone   string            `json:"locationPhone"`
	Items           []entity.CartLine `json:"items"`
	Subtotal        int64             `json:"subtotal"`
	IVA             int64             `json:"iva"`
	Total           int64             `json:"total"`
	PaymentMethod   string            `json:"paymentMethod"`
	RequiresInvoice bool              `json:"requiresInvoice"`
	Date            time.Time         `json:"date"`
}

type ReceiptService struct{}

func NewReceiptService() *ReceiptService { return &ReceiptService{} }

// DeliveryTicket renders the kitchen-facing WhatsApp message for a
// delivery order. Kitchen staff read this by eye; the layout is a
// contract.
func (s *ReceiptService) DeliveryTicket(order *entity.Order, customer CustomerInfo, loc *entity.Location) string {
	subtotal, inc := TaxSplit(order.Total)

	return fmt.Sprintf(`🍔 NUEVO PEDIDO DOMICILIO - PARRILLEROS
═══════════════════════════════════════

📋 PEDIDO #%03d | %s %s

👤 CLIENTE
%s
📱 %s%s

📍 ENTREGA
%s, %s

🛒 PRODUCTOS
%s

💰 DESGLOSE DE COSTOS
• Subtotal: %s
• INC (8%%): %s
• TOTAL: %s

💳 Forma de pago: %s
⏰ Tiempo estimado: 45-60 minutos

¡PROCESAR INMEDIATAMENTE!

📍 %s | %s`,
		order.Number, utils.FormatDate(order.Timestamp), utils.FormatTime(order.Timestamp),
		customer.Name,
		customer.Phone, invoiceInfo(customer),
		customer.Address, customer.Neighborhood,
		cartDetails(order.Items),
		utils.FormatCOP(subtotal), utils.FormatCOP(inc), utils.FormatCOP(order.Total),
		order.PaymentMethod,
		loc.Name, loc.Phone)
}

// PickupTicket renders the WhatsApp message for a pickup order.
func (s *ReceiptService) PickupTicket(order *entity.Order, customer CustomerInfo, loc *entity.Location) string {
	subtotal, inc := TaxSplit(order.Total)

	return fmt.Sprintf(`🍔 NUEVO PEDIDO RECOGIDA - PARRILLEROS
═══════════════════════════════════════

📋 PEDIDO #%03d | %s %s

👤 CLIENTE
%s
📱 %s%s

🏪 RECOGIDA EN SEDE
%s
%s
Tel: %s

🛒 PRODUCTOS
%s

💰 DESGLOSE DE COSTOS
• Subtotal: %s
• INC (8%%): %s
• TOTAL: %s

💳 Forma de pago: %s
⏰ Tiempo estimado: 15-20 minutos

¡PREPARAR INMEDIATAMENTE!

📍 %s | %s`,
		order.Number, utils.FormatDate(order.Timestamp), utils.FormatTime(order.Timestamp),
		customer.Name,
		customer.Phone, invoiceInfo(customer),
		loc.Name, loc.Address, loc.Phone,
		cartDetails(order.Items),
		utils.FormatCOP(subtotal), utils.FormatCOP(inc), utils.FormatCOP(order.Total),
		order.PaymentMethod,
		loc.Name, loc.Phone)
}

// WhatsappURL builds the wa.me link carrying the ticket text.
func (s *ReceiptService) WhatsappURL(whatsapp, message string) string {
	// query-escape, but spaces as %20 like the browser encoder
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", whatsapp, encoded)
}

// BuildInvoiceData assembles the renderer payload for the PDF and print
// views, splitting the total 92/8 at render time.
func (s *ReceiptService) BuildInvoiceData(order *entity.Order, customer CustomerInfo, loc *entity.Location) InvoiceData {
	subtotal, inc := TaxSplit(order.Total)
	data := InvoiceData{
		OrderNumber:     order.Number,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		Address:         customer.Address,
		Neighborhood:    customer.Neighborhood,
		LocationName:    loc.Name,
		LocationAddress: loc.Address,
		LocationPhone:   loc.Phone,
		Items:           order.Items,
		Subtotal:        subtotal,
		IVA:             inc,
		Total:           order.Total,
		PaymentMethod:   order.PaymentMethod,
		RequiresInvoice: customer.RequiresInvoice,
		Date:            order.Timestamp,
	}
	if customer.RequiresInvoice {
		data.CustomerCedula = customer.Cedula
		data.CustomerEmail = customer.Email
	}
	return data
}

func invoiceInfo(customer CustomerInfo) string {
	if customer.RequiresInvoice {
		return fmt.Sprintf("\n📄 FACTURA REQUERIDA\nCC: %s | Email: %s", customer.Cedula, customer.Email)
	}
	return "\n📄 Sin factura"
}

// cartDetails renders the numbered product block: name with the fries
// suffix, quantity and line total, then the selected extras (catalog
// "AD " prefix stripped) and any special instructions, indented.
func cartDetails(items []entity.CartLine) string {
	parts := make([]string, 0, len(items))
	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s", i+1, item.MenuItem.Name)
		if item.WithFries {
			b.WriteString(" + Papas")
		}
		fmt.Fprintf(&b, " x%d - %s", item.Quantity, utils.FormatCOP(item.LineTotal()))

		if len(item.Customizations) > 0 {
			names := make([]string, len(item.Customizations))
			for j, c := range item.Customizations {
				names[j] = stripOptionPrefix(c.Name)
			}
			fmt.Fprintf(&b, "\n   + %s", strings.Join(names, ", "))
		}
		if item.SpecialInstructions != "" {
			fmt.Fprintf(&b, "\n   * %s", item.SpecialInstructions)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

// stripOptionPrefix drops the catalog's "AD " (adición) marker from an
// option name for customer-facing output.
func stripOptionPrefix(name string) string {
	return strings.Replace(name, "AD ", "", 1)
}
