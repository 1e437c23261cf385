package controllers

import (
	"errors"

	"github.com/julirosales079/parrillerosfast/pkg/resp"
	"github.com/julirosales079/parrillerosfast/services"
	"github.com/julirosales079/parrillerosfast/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Checkout *services.CheckoutService
	Sessions *services.SessionService
}

func NewOrderController(checkout *services.CheckoutService, sessions *services.SessionService) *OrderController {
	return &OrderController{Checkout: checkout, Sessions: sessions}
}

// POST /orders/checkout/delivery
func (h *OrderController) CheckoutDelivery(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req services.DeliveryCheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := h.Checkout.CheckoutDelivery(sid, &req)
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	resp.Created(c, result)
}

// POST /orders/checkout/pickup
func (h *OrderController) CheckoutPickup(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req services.PickupCheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := h.Checkout.CheckoutPickup(sid, &req)
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	resp.Created(c, result)
}

// GET /orders/current
func (h *OrderController) Current(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	agg, err := h.Sessions.Aggregate(sid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	order := agg.CurrentOrder()
	if order == nil {
		resp.NotFound(c, "no completed order")
		return
	}
	resp.OK(c, order)
}

func (h *OrderController) checkoutError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "location not found")
		return
	}
	resp.BadRequest(c, err.Error())
}
