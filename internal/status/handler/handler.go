package handler

import (
	"net/http"

	"github.com/dentalsite/backend/internal/status"
	"github.com/dentalsite/backend/internal/status/service"
	"github.com/dentalsite/backend/pkg/logger"
	"github.com/dentalsite/backend/pkg/validate"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, svc *service.Service) {
	rg.POST("/status", func(c *gin.Context) {
		var req status.StatusCheckCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			validate.AbortWithFieldErrors(c, err)
			return
		}
		sc, err := svc.Create(c.Request.Context(), req.ClientName)
		if err != nil {
			logger.Errorf("create status check: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, sc)
	})

	rg.GET("/status", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Errorf("list status checks: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})
}
