package models

import "time"

// EmployeeLeaveBalance tracks how much leave an employee has left in a
// given year, split by leave type
type EmployeeLeaveBalance struct {
	ID              uint64  `gorm:"primaryKey" json:"id"`
	EmployeeID      uint64  `json:"employee_id"`
	Year            int     `json:"year"`
	AnnualRemaining float64 `json:"annual_remaining"`
	SickRemaining   float64 `json:"sick_remaining"`
	OtherRemaining  float64 `json:"other_remaining"`
	TotalTaken      float64 `json:"total_taken"`
}

func (EmployeeLeaveBalance) TableName() string {
	return "employee_leave_balance"
}

// NewEmployeeLeaveBalance creates a zeroed balance for the current year
func NewEmployeeLeaveBalance(employeeID uint64) *EmployeeLeaveBalance {
	return &EmployeeLeaveBalance{
		EmployeeID: employeeID,
		Year:       time.Now().Year(),
	}
}
