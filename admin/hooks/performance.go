package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListPerformance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := timeTrackingService.ListPerformance()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func GetPerformance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		record, err := timeTrackingService.GetPerformance(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if record == nil {
			notFound(c, "Performance record not found")
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

type PerformanceReq struct {
	Date           *string `json:"date"`
	TasksCompleted *int    `json:"tasks_completed"`
	HoursWorked    *int    `json:"hours_worked"`
}

func CreatePerformance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PerformanceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "date is required")
			return
		}
		if req.Date == nil {
			badRequest(c, "date is required")
			return
		}

		record := &models.Performance{Date: *req.Date}
		if req.TasksCompleted != nil {
			record.TasksCompleted = *req.TasksCompleted
		}
		if req.HoursWorked != nil {
			record.HoursWorked = *req.HoursWorked
		}

		if err := timeTrackingService.CreatePerformance(record); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":        "Performance record created",
			"performance_id": record.ID,
		})
	}
}

func UpdatePerformance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		record, err := timeTrackingService.GetPerformance(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if record == nil {
			notFound(c, "Performance record not found")
			return
		}

		var req PerformanceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.Date != nil {
			record.Date = *req.Date
		}
		if req.TasksCompleted != nil {
			record.TasksCompleted = *req.TasksCompleted
		}
		if req.HoursWorked != nil {
			record.HoursWorked = *req.HoursWorked
		}

		if err := timeTrackingService.UpdatePerformance(record); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Performance record updated"})
	}
}

func DeletePerformance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		record, err := timeTrackingService.GetPerformance(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if record == nil {
			notFound(c, "Performance record not found")
			return
		}
		if err := timeTrackingService.DeletePerformance(record); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Performance record deleted"})
	}
}
