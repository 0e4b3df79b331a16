package models

import "time"

// PolicyDocument is a company policy that employees can acknowledge
type PolicyDocument struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DocURL      string    `json:"doc_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPolicyDocument creates a policy document in the default Active state
func NewPolicyDocument(title string) *PolicyDocument {
	return &PolicyDocument{
		Title:     title,
		Status:    "Active",
		CreatedAt: time.Now().UTC(),
	}
}
