package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListCommunications(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comms, err := communicationsService.ListCommunications()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, comms)
	}
}

func GetCommunication(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		comm, err := communicationsService.GetCommunication(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if comm == nil {
			notFound(c, "Communication not found")
			return
		}
		c.JSON(http.StatusOK, comm)
	}
}

type CommunicationReq struct {
	Title   *string `json:"title"`
	Message *string `json:"message"`
}

func CreateCommunication(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CommunicationReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "title and message are required")
			return
		}
		if req.Title == nil || req.Message == nil {
			badRequest(c, "title and message are required")
			return
		}
		comm := models.NewCommunication(*req.Title, *req.Message)
		if err := communicationsService.CreateCommunication(comm); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Communication created",
			"comm_id": comm.ID,
		})
	}
}

func UpdateCommunication(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		comm, err := communicationsService.GetCommunication(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if comm == nil {
			notFound(c, "Communication not found")
			return
		}

		var req CommunicationReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.Title != nil {
			comm.Title = *req.Title
		}
		if req.Message != nil {
			comm.Message = *req.Message
		}

		if err := communicationsService.UpdateCommunication(comm); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Communication updated"})
	}
}

func DeleteCommunication(communicationsService *services.CommunicationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		comm, err := communicationsService.GetCommunication(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if comm == nil {
			notFound(c, "Communication not found")
			return
		}
		if err := communicationsService.DeleteCommunication(comm); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Communication deleted"})
	}
}
