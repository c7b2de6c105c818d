package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type InformantController struct {
	Svc *services.InformantService
}

func NewInformantController(svc *services.InformantService) *InformantController {
	return &InformantController{Svc: svc}
}

// GET /informants?search=&page=&limit=&mine=
func (h *InformantController) List(c *gin.Context) {
	svCode, role := identity(c)

	out, err := h.Svc.Search(
		c.Query("search"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", services.DefaultPageSize),
		role,
		svCode,
		c.Query("mine") == "true",
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /informants
func (h *InformantController) Create(c *gin.Context) {
	var input services.InformantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	svCode, _ := identity(c)
	inf, err := h.Svc.Create(input, svCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": inf})
}

// PATCH /informants  {id, ...partial}
func (h *InformantController) Update(c *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
		services.InformantPatch
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	svCode, role := identity(c)
	inf, err := h.Svc.Update(req.ID, req.InformantPatch, role, svCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": inf})
}

// DELETE /informants?id=
func (h *InformantController) Delete(c *gin.Context) {
	id, ok := queryUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	svCode, role := identity(c)
	if err := h.Svc.Delete(id, role, svCode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
