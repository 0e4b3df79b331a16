package models

// Performance is a daily roll-up of completed tasks and hours worked
type Performance struct {
	ID             uint64 `gorm:"primaryKey" json:"id"`
	Date           string `json:"date"`
	TasksCompleted int    `json:"tasks_completed"`
	HoursWorked    int    `json:"hours_worked"`
}

func (Performance) TableName() string {
	return "performance"
}
