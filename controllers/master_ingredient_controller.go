package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MasterIngredientController struct {
	Svc *services.MasterIngredientService
}

func NewMasterIngredientController(svc *services.MasterIngredientService) *MasterIngredientController {
	return &MasterIngredientController{Svc: svc}
}

// GET /master-ingredients?q=  — top 15 matches for autocomplete
func (h *MasterIngredientController) Search(c *gin.Context) {
	refs, err := h.Svc.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": refs})
}

// POST /master-ingredients  {name}  — find-or-create
func (h *MasterIngredientController) FindOrCreate(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	entry, err := h.Svc.FindOrCreate(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": services.MasterIngredientRef{ID: entry.ID, Name: entry.Name}})
}
