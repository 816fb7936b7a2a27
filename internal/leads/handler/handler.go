package handler

import (
	"net/http"

	"github.com/dentalsite/backend/internal/leads"
	"github.com/dentalsite/backend/internal/leads/service"
	"github.com/dentalsite/backend/pkg/logger"
	"github.com/dentalsite/backend/pkg/validate"
	"github.com/gin-gonic/gin"
)

// listQuery carries the shared limit parameter of both list endpoints.
type listQuery struct {
	Limit int64 `form:"limit,default=20" binding:"min=1,max=100"`
}

func bindLimit(c *gin.Context) (int64, bool) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": []string{"limit"},
		})
		return 0, false
	}
	return q.Limit, true
}

func RegisterRoutes(rg *gin.RouterGroup, svc *service.Service) {
	rg.POST("/contact-messages", func(c *gin.Context) {
		var req leads.ContactMessageCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			validate.AbortWithFieldErrors(c, err)
			return
		}
		msg, err := svc.CreateContact(c.Request.Context(), &req)
		if err != nil {
			logger.Errorf("create contact message: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, msg)
	})

	rg.GET("/contact-messages", func(c *gin.Context) {
		limit, ok := bindLimit(c)
		if !ok {
			return
		}
		list, err := svc.ListContacts(c.Request.Context(), limit)
		if err != nil {
			logger.Errorf("list contact messages: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	rg.POST("/appointment-requests", func(c *gin.Context) {
		var req leads.AppointmentRequestCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			validate.AbortWithFieldErrors(c, err)
			return
		}
		appt, err := svc.CreateAppointment(c.Request.Context(), &req)
		if err != nil {
			logger.Errorf("create appointment request: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, appt)
	})

	rg.GET("/appointment-requests", func(c *gin.Context) {
		limit, ok := bindLimit(c)
		if !ok {
			return
		}
		list, err := svc.ListAppointments(c.Request.Context(), limit)
		if err != nil {
			logger.Errorf("list appointment requests: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, list)
	})
}
