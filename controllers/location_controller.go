package controllers

import (
	"errors"

	"github.com/julirosales079/parrillerosfast/pkg/resp"
	"github.com/julirosales079/parrillerosfast/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LocationController struct{ Repo *repository.LocationRepository }

func NewLocationController(r *repository.LocationRepository) *LocationController {
	return &LocationController{Repo: r}
}

// GET /locations
func (h *LocationController) List(c *gin.Context) {
	locs, err := h.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, locs)
}

// GET /locations/:slug
func (h *LocationController) Detail(c *gin.Context) {
	loc, err := h.Repo.FindBySlug(c.Param("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "location not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, loc)
}
