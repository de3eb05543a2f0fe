package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated account identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}
