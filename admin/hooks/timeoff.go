package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListTimeOffRequests(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := leaveService.ListTimeOffRequests()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

func GetTimeOffRequest(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		request, err := leaveService.GetTimeOffRequest(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if request == nil {
			notFound(c, "Time-off request not found")
			return
		}
		c.JSON(http.StatusOK, request)
	}
}

type TimeOffRequestReq struct {
	EmployeeID *uint64 `json:"employee_id"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Status     *string `json:"status"`
}

func CreateTimeOffRequest(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TimeOffRequestReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Missing required fields")
			return
		}
		if req.EmployeeID == nil || req.StartDate == nil || req.EndDate == nil {
			badRequest(c, "Missing required fields")
			return
		}

		request := models.NewTimeOffRequest(*req.EmployeeID, *req.StartDate, *req.EndDate)
		if req.Status != nil {
			request.Status = *req.Status
		}

		if err := leaveService.CreateTimeOffRequest(request); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Time-off request created",
			"request_id": request.ID,
		})
	}
}

func UpdateTimeOffRequest(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		request, err := leaveService.GetTimeOffRequest(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if request == nil {
			notFound(c, "Time-off request not found")
			return
		}

		var req TimeOffRequestReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.EmployeeID != nil {
			request.EmployeeID = *req.EmployeeID
		}
		if req.StartDate != nil {
			request.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			request.EndDate = *req.EndDate
		}
		if req.Status != nil {
			request.Status = *req.Status
		}

		if err := leaveService.UpdateTimeOffRequest(request); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Time-off request updated"})
	}
}

func DeleteTimeOffRequest(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		request, err := leaveService.GetTimeOffRequest(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if request == nil {
			notFound(c, "Time-off request not found")
			return
		}
		if err := leaveService.DeleteTimeOffRequest(request); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Time-off request deleted"})
	}
}
