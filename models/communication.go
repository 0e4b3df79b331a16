package models

import "time"

// Communication is a company-wide announcement
type Communication struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommunication creates an announcement stamped with the current time
func NewCommunication(title, message string) *Communication {
	return &Communication{
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}
