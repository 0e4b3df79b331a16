package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListAttendance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := timeTrackingService.ListAttendance()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func GetAttendance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		record, err := timeTrackingService.GetAttendance(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if record == nil {
			notFound(c, "Attendance record not found")
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

type AttendanceReq struct {
	EmployeeID  *uint64  `json:"employee_id"`
	Date        *string  `json:"date"`
	IsLate      *bool    `json:"is_late"`
	HoursWorked *float64 `json:"hours_worked"`
	BreakTime   *float64 `json:"break_time"`
	Status      *string  `json:"status"`
}

func CreateAttendance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AttendanceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Missing required fields")
			return
		}
		if req.EmployeeID == nil || req.Date == nil || req.HoursWorked == nil || req.Status == nil {
			badRequest(c, "Missing required fields")
			return
		}

		record := &models.Attendance{
			EmployeeID:  *req.EmployeeID,
			Date:        *req.Date,
			HoursWorked: *req.HoursWorked,
			Status:      *req.Status,
		}
		if req.IsLate != nil {
			record.IsLate = *req.IsLate
		}
		if req.BreakTime != nil {
			record.BreakTime = *req.BreakTime
		}

		if err := timeTrackingService.CreateAttendance(record); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":       "Attendance record created",
			"attendance_id": record.ID,
		})
	}
}

func UpdateAttendance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		record, err := timeTrackingService.GetAttendance(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if record == nil {
			notFound(c, "Attendance record not found")
			return
		}

		var req AttendanceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.EmployeeID != nil {
			record.EmployeeID = *req.EmployeeID
		}
		if req.Date != nil {
			record.Date = *req.Date
		}
		if req.IsLate != nil {
			record.IsLate = *req.IsLate
		}
		if req.HoursWorked != nil {
			record.HoursWorked = *req.HoursWorked
		}
		if req.BreakTime != nil {
			record.BreakTime = *req.BreakTime
		}
		if req.Status != nil {
			record.Status = *req.Status
		}

		if err := timeTrackingService.UpdateAttendance(record); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Attendance record updated"})
	}
}

func DeleteAttendance(timeTrackingService *services.TimeTrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		record, err := timeTrackingService.GetAttendance(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if record == nil {
			notFound(c, "Attendance record not found")
			return
		}
		if err := timeTrackingService.DeleteAttendance(record); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Attendance record deleted"})
	}
}
