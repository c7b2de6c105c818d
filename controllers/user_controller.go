package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// UserController is the admin-managed account CRUD. Route-level gating keeps
// non-admins out; the self-deletion rule lives in the service.
type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

// GET /users?search=&page=&limit=
func (h *UserController) List(c *gin.Context) {
	out, err := h.Svc.List(
		c.Query("search"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", services.DefaultPageSize),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /users
func (h *UserController) Create(c *gin.Context) {
	var input services.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	user, err := h.Svc.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

// PATCH /users  {id, ...partial}
func (h *UserController) Update(c *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
		services.UserInput
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	user, err := h.Svc.Update(req.ID, req.UserInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// DELETE /users?id=
func (h *UserController) Delete(c *gin.Context) {
	id, ok := queryUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	svCode, _ := identity(c)
	if err := h.Svc.Delete(id, svCode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
