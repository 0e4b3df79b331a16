package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListLeaveBalances(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		balances, err := leaveService.ListBalances()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, balances)
	}
}

func GetLeaveBalance(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		balance, err := leaveService.GetBalance(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if balance == nil {
			notFound(c, "Leave balance not found")
			return
		}
		c.JSON(http.StatusOK, balance)
	}
}

type LeaveBalanceReq struct {
	EmployeeID      *uint64  `json:"employee_id"`
	Year            *int     `json:"year"`
	AnnualRemaining *float64 `json:"annual_remaining"`
	SickRemaining   *float64 `json:"sick_remaining"`
	OtherRemaining  *float64 `json:"other_remaining"`
	TotalTaken      *float64 `json:"total_taken"`
}

func CreateLeaveBalance(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LeaveBalanceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "employee_id is required")
			return
		}
		if req.EmployeeID == nil {
			badRequest(c, "employee_id is required")
			return
		}

		balance := models.NewEmployeeLeaveBalance(*req.EmployeeID)
		if req.Year != nil {
			balance.Year = *req.Year
		}
		if req.AnnualRemaining != nil {
			balance.AnnualRemaining = *req.AnnualRemaining
		}
		if req.SickRemaining != nil {
			balance.SickRemaining = *req.SickRemaining
		}
		if req.OtherRemaining != nil {
			balance.OtherRemaining = *req.OtherRemaining
		}
		if req.TotalTaken != nil {
			balance.TotalTaken = *req.TotalTaken
		}

		if err := leaveService.CreateBalance(balance); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Leave balance created",
			"balance_id": balance.ID,
		})
	}
}

func UpdateLeaveBalance(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		balance, err := leaveService.GetBalance(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if balance == nil {
			notFound(c, "Leave balance not found")
			return
		}

		var req LeaveBalanceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.EmployeeID != nil {
			balance.EmployeeID = *req.EmployeeID
		}
		if req.Year != nil {
			balance.Year = *req.Year
		}
		if req.AnnualRemaining != nil {
			balance.AnnualRemaining = *req.AnnualRemaining
		}
		if req.SickRemaining != nil {
			balance.SickRemaining = *req.SickRemaining
		}
		if req.OtherRemaining != nil {
			balance.OtherRemaining = *req.OtherRemaining
		}
		if req.TotalTaken != nil {
			balance.TotalTaken = *req.TotalTaken
		}

		if err := leaveService.UpdateBalance(balance); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Leave balance updated"})
	}
}

func DeleteLeaveBalance(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		balance, err := leaveService.GetBalance(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if balance == nil {
			notFound(c, "Leave balance not found")
			return
		}
		if err := leaveService.DeleteBalance(balance); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Leave balance deleted"})
	}
}

func ListLeaveRequests(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := leaveService.ListLeaveRequests()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

func GetLeaveRequest(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		request, err := leaveService.GetLeaveRequest(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if request == nil {
			notFound(c, "Leave request not found")
			return
		}
		c.JSON(http.StatusOK, request)
	}
}

type LeaveRequestReq struct {
	EmployeeID *uint64  `json:"employee_id"`
	LeaveType  *string  `json:"leave_type"`
	StartDate  *string  `json:"start_date"`
	EndDate    *string  `json:"end_date"`
	Days       *float64 `json:"days"`
	Status     *string  `json:"status"`
}

func CreateLeaveRequest(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LeaveRequestReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Missing required fields")
			return
		}
		if req.EmployeeID == nil || req.StartDate == nil || req.EndDate == nil {
			badRequest(c, "Missing required fields")
			return
		}

		request := models.NewLeaveRequest(*req.EmployeeID, *req.StartDate, *req.EndDate)
		if req.LeaveType != nil {
			request.LeaveType = *req.LeaveType
		}
		if req.Days != nil {
			request.Days = *req.Days
		}
		if req.Status != nil {
			request.Status = *req.Status
		}

		if err := leaveService.CreateLeaveRequest(request); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Leave request created",
			"request_id": request.ID,
		})
	}
}

func UpdateLeaveRequest(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		request, err := leaveService.GetLeaveRequest(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if request == nil {
			notFound(c, "Leave request not found")
			return
		}

		var req LeaveRequestReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.EmployeeID != nil {
			request.EmployeeID = *req.EmployeeID
		}
		if req.LeaveType != nil {
			request.LeaveType = *req.LeaveType
		}
		if req.StartDate != nil {
			request.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			request.EndDate = *req.EndDate
		}
		if req.Days != nil {
			request.Days = *req.Days
		}
		if req.Status != nil {
			request.Status = *req.Status
		}

		if err := leaveService.UpdateLeaveRequest(request); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Leave request updated"})
	}
}

func DeleteLeaveRequest(leaveService *services.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		request, err := leaveService.GetLeaveRequest(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if request == nil {
			notFound(c, "Leave request not found")
			return
		}
		if err := leaveService.DeleteLeaveRequest(request); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Leave request deleted"})
	}
}
