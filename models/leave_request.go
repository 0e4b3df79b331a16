package models

import "time"

// LeaveRequest is a typed request for leave, pending until an admin sets
// its status
type LeaveRequest struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	EmployeeID uint64    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Days       float64   `json:"days"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewLeaveRequest creates a one-day annual leave request in the default
// Pending state
func NewLeaveRequest(employeeID uint64, startDate, endDate string) *LeaveRequest {
	return &LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  "Annual",
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       1.0,
		Status:     "Pending",
		CreatedAt:  time.Now().UTC(),
	}
}
