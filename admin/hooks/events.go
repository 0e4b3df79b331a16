package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListEvents(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := scheduleService.ListEvents()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func GetEvent(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		event, err := scheduleService.GetEvent(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if event == nil {
			notFound(c, "Event not found")
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

type EventReq struct {
	Title        *string `json:"title"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	Duration     *string `json:"duration"`
	Description  *string `json:"description"`
	Participants *string `json:"participants"`
	Color        *string `json:"color"`
}

func CreateEvent(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EventReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "title, date, and time are required")
			return
		}
		if req.Title == nil || req.Date == nil || req.Time == nil {
			badRequest(c, "title, date, and time are required")
			return
		}

		event := models.NewEvent(*req.Title, *req.Date, *req.Time)
		if req.Duration != nil {
			event.Duration = *req.Duration
		}
		if req.Description != nil {
			event.Description = *req.Description
		}
		if req.Participants != nil {
			event.Participants = *req.Participants
		}
		if req.Color != nil {
			event.Color = *req.Color
		}

		if err := scheduleService.CreateEvent(event); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Event created",
			"event_id": event.ID,
		})
	}
}

func UpdateEvent(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		event, err := scheduleService.GetEvent(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if event == nil {
			notFound(c, "Event not found")
			return
		}

		var req EventReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.Title != nil {
			event.Title = *req.Title
		}
		if req.Date != nil {
			event.Date = *req.Date
		}
		if req.Time != nil {
			event.Time = *req.Time
		}
		if req.Duration != nil {
			event.Duration = *req.Duration
		}
		if req.Description != nil {
			event.Description = *req.Description
		}
		if req.Participants != nil {
			event.Participants = *req.Participants
		}
		if req.Color != nil {
			event.Color = *req.Color
		}

		if err := scheduleService.UpdateEvent(event); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event updated"})
	}
}

func DeleteEvent(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		event, err := scheduleService.GetEvent(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if event == nil {
			notFound(c, "Event not found")
			return
		}
		if err := scheduleService.DeleteEvent(event); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
	}
}
