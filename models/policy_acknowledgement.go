package models

import "time"

// PolicyAcknowledgement records that a user has acknowledged a policy
// document. PolicyID and UserID are plain reference columns and are never
// validated against their tables.
type PolicyAcknowledgement struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PolicyID  uint64    `json:"policy_id"`
	UserID    uint64    `json:"user_id"`
	AckStatus string    `json:"ack_status"`
	AckDate   time.Time `json:"ack_date"`
}

// NewPolicyAcknowledgement creates an acknowledgement stamped with the
// current time
func NewPolicyAcknowledgement(policyID, userID uint64) *PolicyAcknowledgement {
	return &PolicyAcknowledgement{
		PolicyID:  policyID,
		UserID:    userID,
		AckStatus: "Acknowledged",
		AckDate:   time.Now().UTC(),
	}
}
