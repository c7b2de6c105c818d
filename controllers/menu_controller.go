package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menus?q=&canal=&category=&status=&page=&limit=&full=&mine=
func (h *MenuController) List(c *gin.Context) {
	svCode, _ := identity(c)

	filters := services.MenuListFilters{
		Search:   c.Query("q"),
		Canal:    c.Query("canal"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", services.DefaultPageSize),
		Full:     c.Query("full") == "true",
		Mine:     c.Query("mine") == "true",
	}

	out, err := h.Svc.List(filters, svCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /menus/:id?full=
func (h *MenuController) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	menu, err := h.Svc.Get(id, c.Query("full") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": menu})
}

// POST /menus
func (h *MenuController) Create(c *gin.Context) {
	var menu models.Menu
	if err := c.ShouldBindJSON(&menu); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	svCode, _ := identity(c)
	created, err := h.Svc.Create(&menu, svCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

// PUT /menus  {menu_id, ...partial}
func (h *MenuController) Update(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	id, ok := body["menu_id"].(float64)
	if !ok || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_id is required"})
		return
	}
	delete(body, "menu_id")

	svCode, role := identity(c)
	menu, err := h.Svc.Update(uint(id), body, role, svCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": menu})
}

// PATCH /menus  {menu_id, selection_status[]}  (director/admin only)
func (h *MenuController) UpdateSelectionStatus(c *gin.Context) {
	var req struct {
		MenuID          uint     `json:"menu_id" binding:"required"`
		SelectionStatus []string `json:"selection_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	svCode, role := identity(c)
	if err := h.Svc.UpdateSelectionStatus(req.MenuID, req.SelectionStatus, role, svCode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /menus?id=  (admin or owner only)
func (h *MenuController) Delete(c *gin.Context) {
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
