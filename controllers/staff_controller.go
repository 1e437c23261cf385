package controllers

import (
	"github.com/julirosales079/parrillerosfast/pkg/resp"
	"github.com/julirosales079/parrillerosfast/services"

	"github.com/gin-gonic/gin"
)

type StaffController struct{ Counter *services.KVOrderCounter }

func NewStaffController(counter *services.KVOrderCounter) *StaffController {
	return &StaffController{Counter: counter}
}

// GET /staff/counter
func (h *StaffController) GetCounter(c *gin.Context) {
	last, err := h.Counter.PeekLast()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"lastOrderNumber": last})
}

// PUT /staff/counter
func (h *StaffController) PutCounter(c *gin.Context) {
	var body struct {
		Value int `json:"value" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Counter.Reset(body.Value); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"lastOrderNumber": body.Value})
}
