package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// unknown is logged and surfaced generically so raw database errors never
// reach the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInformantReferenced):
		c.JSON(http.StatusBadRequest, gin.H{"error": "informant is referenced by existing menus and cannot be deleted"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to perform this action"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		config.Log.Errorw("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred"})
	}
}

// identity reads the sv_code and role the auth middleware put on the context.
func identity(c *gin.Context) (svCode, role string) {
	return c.GetString("svCode"), c.GetString("role")
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func queryUint(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func paramUint(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
