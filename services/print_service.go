package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/julirosales079/parrillerosfast/entity"
	"github.com/julirosales079/parrillerosfast/utils"
)

// PrintService renders the printable HTML invoice the kiosk opens in a
// print window.
type PrintService struct {
	tmpl *template.Template
}

func NewPrintService() *PrintService {
	funcs := template.FuncMap{
		"cop":  utils.FormatCOP,
		"date": utils.FormatDate,
		"time": utils.FormatTime,
		"pad3": func(n int) string { return fmt.Sprintf("%03d", n) },
		"unit": func(l entity.CartLine) string { return utils.FormatCOP(l.UnitPrice()) },
		"line": func(l entity.CartLine) string { return utils.FormatCOP(l.LineTotal()) },
		"opt":  stripOptionPrefix,
	}
	return &PrintService{
		tmpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTML)),
	}
}

func (s *PrintService) RenderInvoice(data InvoiceData) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render printable invoice: %w", err)
	}
	return buf.String(), nil
}

const invoiceHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Ticket Parrilleros #{{pad3 .OrderNumber}}</title>
  <style>
    @page { margin: 15mm; size: A4; }
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; font-size: 11px; line-height: 1.5; margin: 0; padding: 0; color: #333; background: white; }
    .invoice-container { max-width: 800px; margin: 0 auto; background: white; border: 1px solid #ddd; }
    .header { background: linear-gradient(135deg, #FF8C00 0%, #FF6B00 100%); color: white; text-align: center; padding: 16px; }
    .header h1 { margin: 0; font-size: 20px; }
    .section { padding: 10px 16px; border-bottom: 1px dashed #ccc; }
    .section h2 { font-size: 13px; margin: 0 0 6px; }
    .order-number { font-size: 18px; font-weight: bold; text-align: center; }
    .item { margin-bottom: 8px; }
    .item .name { font-weight: bold; }
    .item .extras, .item .note { margin-left: 12px; font-style: italic; color: #666; }
    .totals td { padding: 2px 0; }
    .totals .grand { font-size: 15px; font-weight: bold; }
    .right { text-align: right; }
    .footer { text-align: center; padding: 12px; color: #777; }
  </style>
</head>
<body>
  <div class="invoice-container">
    <div class="header">
      <h1>PARRILLEROS FAST FOOD</h1>
      <div>Hamburguesas Artesanales</div>
    </div>
    <div class="section">
      <div class="order-number">PEDIDO #{{pad3 .OrderNumber}}</div>
      <div style="text-align:center">{{date .Date}} {{time .Date}}</div>
    </div>
    <div class="section">
      <h2>{{.LocationName}}</h2>
      <div>{{.LocationAddress}}</div>
      <div>Tel: {{.LocationPhone}}</div>
    </div>
    <div class="section">
      <h2>DATOS DEL CLIENTE</h2>
      <div>Cliente: {{.CustomerName}}</div>
      <div>Telefono: {{.CustomerPhone}}</div>
      <div>Direccion: {{.Address}}</div>
      <div>Barrio: {{.Neighborhood}}</div>
      {{if .RequiresInvoice}}
      <div>CC: {{.CustomerCedula}}</div>
      <div>Email: {{.CustomerEmail}}</div>
      {{end}}
    </div>
    <div class="section">
      <h2>PRODUCTOS PEDIDOS</h2>
      {{range $i, $item := .Items}}
      <div class="item">
        <div class="name">{{$item.MenuItem.Name}}{{if $item.WithFries}} + Papas{{end}}</div>
        <div>{{$item.Quantity}} x {{unit $item}} = {{line $item}}</div>
        {{if $item.Customizations}}
        <div class="extras">+ {{range $j, $c := $item.Customizations}}{{if $j}}, {{end}}{{opt $c.Name}}{{end}}</div>
        {{end}}
        {{if $item.SpecialInstructions}}
        <div class="note">* {{$item.SpecialInstructions}}</div>
        {{end}}
      </div>
      {{end}}
    </div>
    <div class="section">
      <h2>RESUMEN DE COSTOS</h2>
      <table class="totals" width="100%">
        <tr><td>Subtotal:</td><td class="right">{{cop .Subtotal}}</td></tr>
        <tr><td>INC (8%):</td><td class="right">{{cop .IVA}}</td></tr>
        <tr class="grand"><td>TOTAL:</td><td class="right">{{cop .Total}}</td></tr>
      </table>
      <div>Forma de pago: {{.PaymentMethod}}</div>
    </div>
    <div class="footer">
      <div>&iexcl;Gracias por tu preferencia!</div>
      <div>PARRILLEROS FAST FOOD - Hamburguesas artesanales a la parrilla</div>
    </div>
  </div>
  <script>window.onload = function () { window.print(); };</script>
</body>
</html>
`
