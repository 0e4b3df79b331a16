package models

// TimeOffRequest is a request for time away from work, pending until an
// admin sets its status
type TimeOffRequest struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	EmployeeID uint64 `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

// TableName keeps the original table name, which gorm would otherwise
// pluralize as time_off_requests
func (TimeOffRequest) TableName() string {
	return "timeoff_requests"
}

// NewTimeOffRequest creates a time-off request in the default Pending state
func NewTimeOffRequest(employeeID uint64, startDate, endDate string) *TimeOffRequest {
	return &TimeOffRequest{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     "Pending",
	}
}
