package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/julirosales079/parrillerosfast/utils"

	"github.com/go-pdf/fpdf"
)

// PDFService renders the downloadable receipt: 80mm wide, styled after
// a thermal printer ticket.
type PDFService struct{}

func NewPDFService() *PDFService { return &PDFService{} }

// FileName matches the name the kiosk has always produced,
// e.g. Factura_Parrilleros_008_2026-08-31.pdf.
func (s *PDFService) FileName(data InvoiceData) string {
	return fmt.Sprintf("Factura_Parrilleros_%03d_%s.pdf", data.OrderNumber, utils.FormatISODate(data.Date))
}

func (s *PDFService) RenderInvoice(data InvoiceData) ([]byte, error) {
	const receiptWidth = 80.0
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: receiptWidth, Ht: 297},
	})
	doc.SetAutoPageBreak(true, 5)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := doc.GetPageSize()
	leftMargin := 2.0
	rightMargin := pageWidth - 2
	contentWidth := pageWidth - 4
	y := 5.0

	wrapped := func(text string, x, y, maxWidth, fontSize float64, style string) float64 {
		doc.SetFont("Helvetica", style, fontSize)
		lines := doc.SplitLines([]byte(tr(text)), maxWidth)
		for i, line := range lines {
			doc.Text(x, y+float64(i)*(fontSize*0.4), string(line))
		}
		return y + float64(len(lines))*(fontSize*0.4)
	}
	centered := func(text string, y, fontSize float64, style string) float64 {
		doc.SetFont("Helvetica", style, fontSize)
		w := doc.GetStringWidth(tr(text))
		doc.Text((pageWidth-w)/2, y, tr(text))
		return y + fontSize*0.4
	}
	separator := func(y float64) float64 {
		doc.SetDrawColor(0, 0, 0)
		doc.Line(leftMargin, y, rightMargin, y)
		return y + 2
	}

	// header
	y = centered("PARRILLEROS", y+3, 12, "B")
	y = centered("FAST FOOD", y+1, 10, "B")
	y = centered("Hamburguesas Artesanales", y+1, 8, "")
	y = separator(y + 2)

	// order number and date
	y = centered(fmt.Sprintf("PEDIDO #%03d", data.OrderNumber), y+2, 14, "B")
	y = centered(fmt.Sprintf("%s %s", utils.FormatDate(data.Date), utils.FormatTime(data.Date)), y+1, 8, "")
	y = separator(y + 2)

	// store location
	y = centered(data.LocationName, y+2, 10, "B")
	y = wrapped(data.LocationAddress, leftMargin, y+1, contentWidth, 8, "")
	y = centered("Tel: "+data.LocationPhone, y+1, 8, "")
	y = separator(y + 2)

	// customer
	y = centered("DATOS DEL CLIENTE", y+2, 10, "B")
	y = wrapped("Cliente: "+data.CustomerName, leftMargin, y+1, contentWidth, 8, "")
	y = wrapped("Telefono: "+data.CustomerPhone, leftMargin, y+1, contentWidth, 8, "")
	y = wrapped("Direccion: "+data.Address, leftMargin, y+1, contentWidth, 8, "")
	y = wrapped("Barrio: "+data.Neighborhood, leftMargin, y+1, contentWidth, 8, "")
	if data.RequiresInvoice && data.CustomerCedula != "" && data.CustomerEmail != "" {
		y = wrapped("CC: "+data.CustomerCedula, leftMargin, y+1, contentWidth, 8, "")
		y = wrapped("Email: "+data.CustomerEmail, leftMargin, y+1, contentWidth, 8, "")
	}
	y = separator(y + 2)

	// items
	y = centered("PRODUCTOS PEDIDOS", y+2, 10, "B")
	y = separator(y + 1)
	for i, item := range data.Items {
		name := fmt.Sprintf("%d. %s", i+1, item.MenuItem.Name)
		if item.WithFries {
			name += " + Papas"
		}
		y = wrapped(name, leftMargin, y+2, contentWidth, 9, "B")

		qtyLine := fmt.Sprintf("%d x %s = %s", item.Quantity, utils.FormatCOP(item.UnitPrice()), utils.FormatCOP(item.LineTotal()))
		y = wrapped(qtyLine, leftMargin+2, y+1, contentWidth-2, 8, "")

		if len(item.Customizations) > 0 {
			names := make([]string, len(item.Customizations))
			for j, c := range item.Customizations {
				names[j] = stripOptionPrefix(c.Name)
			}
			y = wrapped("+ "+strings.Join(names, ", "), leftMargin+2, y+1, contentWidth-2, 7, "I")
		}
		if item.SpecialInstructions != "" {
			y = wrapped("* "+item.SpecialInstructions, leftMargin+2, y+1, contentWidth-2, 7, "I")
		}
		y += 1
	}
	y = separator(y + 2)

	// totals
	y = centered("RESUMEN DE COSTOS", y+2, 10, "B")
	doc.SetFont("Helvetica", "", 8)
	doc.Text(leftMargin, y+3, "Subtotal:")
	rightAlign(doc, rightMargin, y+3, utils.FormatCOP(data.Subtotal))
	doc.Text(leftMargin, y+6, "INC (8%):")
	rightAlign(doc, rightMargin, y+6, utils.FormatCOP(data.IVA))
	y = separator(y + 8)

	doc.SetFont("Helvetica", "B", 12)
	doc.Text(leftMargin, y+3, "TOTAL:")
	rightAlign(doc, rightMargin, y+3, utils.FormatCOP(data.Total))
	y = separator(y + 5)

	// payment and delivery info
	y = wrapped("Forma de pago: "+data.PaymentMethod, leftMargin, y+2, contentWidth, 8, "")
	y = separator(y + 2)
	y = centered("INFORMACION DE ENTREGA", y+2, 9, "B")
	y = centered("Tiempo estimado: 45-60 min", y+1, 8, "")
	y = centered("Te contactaremos pronto", y+1, 8, "")
	y = separator(y + 2)

	// footer
	y = centered("¡Gracias por tu preferencia!", y+3, 9, "B")
	y = centered("PARRILLEROS FAST FOOD", y+1, 8, "")
	y = centered("Hamburguesas artesanales", y+1, 7, "")
	y = centered("a la parrilla", y+1, 7, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func rightAlign(doc *fpdf.Fpdf, right, y float64, text string) {
	doc.Text(right-doc.GetStringWidth(text), y, text)
}
