package controllers

import (
	"fmt"
	"net/http"

	"github.com/julirosales079/parrillerosfast/pkg/resp"
	"github.com/julirosales079/parrillerosfast/services"
	"github.com/julirosales079/parrillerosfast/utils"

	"github.com/gin-gonic/gin"
)

type ReceiptController struct {
	Sessions *services.SessionService
	PDF      *services.PDFService
	Print    *services.PrintService
}

func NewReceiptController(sessions *services.SessionService, pdf *services.PDFService, print *services.PrintService) *ReceiptController {
	return &ReceiptController{Sessions: sessions, PDF: pdf, Print: print}
}

// GET /orders/current/ticket
func (h *ReceiptController) Ticket(c *gin.Context) {
	result := h.checkout(c)
	if result == nil {
		return
	}
	resp.OK(c, gin.H{"ticket": result.Ticket, "whatsappUrl": result.WhatsappURL})
}

// GET /orders/current/ticket.pdf
func (h *ReceiptController) TicketPDF(c *gin.Context) {
	result := h.checkout(c)
	if result == nil {
		return
	}
	pdf, err := h.PDF.RenderInvoice(result.Invoice)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	name := h.PDF.FileName(result.Invoice)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /orders/current/print
func (h *ReceiptController) PrintView(c *gin.Context) {
	result := h.checkout(c)
	if result == nil {
		return
	}
	html, err := h.Print.RenderInvoice(result.Invoice)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *ReceiptController) checkout(c *gin.Context) *services.CheckoutResult {
	sid := utils.CurrentSessionID(c)
	result := h.Sessions.Checkout(sid)
	if result == nil {
		resp.NotFound(c, "no completed order")
		return nil
	}
	return result
}
