package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// MenuChildrenController carries the three replace-all endpoints. Each POST
// has the same contract: after the call the stored child set for the menu
// equals exactly what was sent.
type MenuChildrenController struct {
	Ingredients *services.IngredientService
	Steps       *services.StepService
	Photos      *services.PhotoService
}

func NewMenuChildrenController(ing *services.IngredientService, steps *services.StepService, photos *services.PhotoService) *MenuChildrenController {
	return &MenuChildrenController{Ingredients: ing, Steps: steps, Photos: photos}
}

// POST /menu-ingredients  {ref_menu_id, ingredients[]}
func (h *MenuChildrenController) ReplaceIngredients(c *gin.Context) {
	var req struct {
		RefMenuID   uint                       `json:"ref_menu_id" binding:"required"`
		Ingredients []services.IngredientInput `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	rows, err := h.Ingredients.ReplaceAll(req.RefMenuID, req.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GET /menu-ingredients?menu_id=
func (h *MenuChildrenController) ListIngredients(c *gin.Context) {
	menuID, ok := queryUint(c, "menu_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_id is required"})
		return
	}
	rows, err := h.Ingredients.ListByMenu(menuID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// POST /menu-steps  {ref_menu_id, steps[]}
func (h *MenuChildrenController) ReplaceSteps(c *gin.Context) {
	var req struct {
		RefMenuID uint                 `json:"ref_menu_id" binding:"required"`
		Steps     []services.StepInput `json:"steps"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	rows, err := h.Steps.ReplaceAll(req.RefMenuID, req.Steps)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GET /menu-steps?menu_id=
func (h *MenuChildrenController) ListSteps(c *gin.Context) {
	menuID, ok := queryUint(c, "menu_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_id is required"})
		return
	}
	rows, err := h.Steps.ListByMenu(menuID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// POST /menu-photos  {ref_menu_id, photos[]}
func (h *MenuChildrenController) ReplacePhotos(c *gin.Context) {
	var req struct {
		RefMenuID uint                  `json:"ref_menu_id" binding:"required"`
		Photos    []services.PhotoInput `json:"photos"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	rows, err := h.Photos.ReplaceAll(req.RefMenuID, req.Photos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GET /menu-photos?menu_id=
func (h *MenuChildrenController) ListPhotos(c *gin.Context) {
	menuID, ok := queryUint(c, "menu_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_id is required"})
		return
	}
	rows, err := h.Photos.ListByMenu(menuID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}
