package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListShifts(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		shifts, err := scheduleService.ListShifts()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, shifts)
	}
}

func GetShift(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		shift, err := scheduleService.GetShift(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if shift == nil {
			notFound(c, "Shift not found")
			return
		}
		c.JSON(http.StatusOK, shift)
	}
}

type ShiftReq struct {
	EmployeeID *uint64 `json:"employee_id"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Status     *string `json:"status"`
}

func CreateShift(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ShiftReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Missing required fields")
			return
		}
		if req.EmployeeID == nil || req.StartTime == nil || req.EndTime == nil {
			badRequest(c, "Missing required fields")
			return
		}

		shift := models.NewShift(*req.EmployeeID, *req.StartTime, *req.EndTime)
		if req.Status != nil {
			shift.Status = *req.Status
		}

		if err := scheduleService.CreateShift(shift); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Shift created",
			"shift_id": shift.ID,
		})
	}
}

func UpdateShift(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		shift, err := scheduleService.GetShift(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if shift == nil {
			notFound(c, "Shift not found")
			return
		}

		var req ShiftReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.EmployeeID != nil {
			shift.EmployeeID = *req.EmployeeID
		}
		if req.StartTime != nil {
			shift.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			shift.EndTime = *req.EndTime
		}
		if req.Status != nil {
			shift.Status = *req.Status
		}

		if err := scheduleService.UpdateShift(shift); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Shift updated"})
	}
}

func DeleteShift(scheduleService *services.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		shift, err := scheduleService.GetShift(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if shift == nil {
			notFound(c, "Shift not found")
			return
		}
		if err := scheduleService.DeleteShift(shift); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
	}
}
