package models

import "time"

// ActivityLog is a free-form audit trail entry
type ActivityLog struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}

// NewActivityLog creates a log entry stamped with the current time
func NewActivityLog(description string) *ActivityLog {
	return &ActivityLog{
		Description: description,
		Timestamp:   time.Now().UTC(),
	}
}
