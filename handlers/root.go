package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoot registers the API-root greeting used by uptime probes and the
// front-end connectivity check.
func RegisterRoot(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})
}
