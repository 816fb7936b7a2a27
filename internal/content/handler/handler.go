package handler

import (
	"net/http"

	"github.com/dentalsite/backend/internal/content"
	"github.com/dentalsite/backend/internal/content/service"
	"github.com/dentalsite/backend/pkg/logger"
	"github.com/dentalsite/backend/pkg/validate"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, svc *service.Service) {
	rg.GET("/site-content", func(c *gin.Context) {
		doc, err := svc.Get(c.Request.Context())
		if err != nil {
			logger.Errorf("get site content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, doc)
	})

	rg.PUT("/site-content", func(c *gin.Context) {
		var req content.SiteContentUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			validate.AbortWithFieldErrors(c, err)
			return
		}
		doc, err := svc.Update(c.Request.Context(), req.Content)
		if err != nil {
			logger.Errorf("update site content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, doc)
	})
}
