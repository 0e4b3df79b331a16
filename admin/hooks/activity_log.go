package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListActivity(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := communicationsService.ListActivity()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func GetActivity(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		entry, err := communicationsService.GetActivity(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if entry == nil {
			notFound(c, "Activity log entry not found")
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

type ActivityReq struct {
	Description *string `json:"description"`
}

func CreateActivity(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActivityReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "description is required")
			return
		}
		if req.Description == nil {
			badRequest(c, "description is required")
			return
		}
		entry := models.NewActivityLog(*req.Description)
		if err := communicationsService.CreateActivity(entry); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":     "Activity log entry created",
			"activity_id": entry.ID,
		})
	}
}

func UpdateActivity(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		entry, err := communicationsService.GetActivity(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if entry == nil {
			notFound(c, "Activity log entry not found")
			return
		}

		var req ActivityReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.Description != nil {
			entry.Description = *req.Description
		}

		if err := communicationsService.UpdateActivity(entry); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Activity log entry updated"})
	}
}

func DeleteActivity(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		entry, err := communicationsService.GetActivity(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if entry == nil {
			notFound(c, "Activity log entry not found")
			return
		}
		if err := communicationsService.DeleteActivity(entry); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Activity log entry deleted"})
	}
}
