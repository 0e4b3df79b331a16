package models

// Attendance is one employee's attendance record for one day
type Attendance struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	EmployeeID  uint64  `json:"employee_id"`
	Date        string  `json:"date"`
	IsLate      bool    `json:"is_late"`
	HoursWorked float64 `json:"hours_worked"`
	BreakTime   float64 `json:"break_time"`
	Status      string  `json:"status"`
}

func (Attendance) TableName() string {
	return "attendance"
}
