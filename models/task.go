package models

// Task is a unit of assignable work. AssignedTo references an employee by
// id but is never validated against the employees table.
type Task struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	AssignedTo  *uint64 `json:"assigned_to"`
}

// NewTask creates a task with the default priority and status
func NewTask(title string) *Task {
	return &Task{
		Title:    title,
		Priority: "Medium",
		Status:   "Open",
	}
}
