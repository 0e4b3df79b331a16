package models

// Shift is a scheduled block of working time for one employee
type Shift struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	EmployeeID uint64 `json:"employee_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
}

// NewShift creates a shift in the default Active state
func NewShift(employeeID uint64, startTime, endTime string) *Shift {
	return &Shift{
		EmployeeID: employeeID,
		StartTime:  startTime,
		EndTime:    endTime,
		Status:     "Active",
	}
}
