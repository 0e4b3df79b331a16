package models

import "time"

// ChatMessage is one message in a room's history. Messages are immutable
// once written.
type ChatMessage struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	RoomID    uint64    `json:"room_id"`
	SenderID  uint64    `json:"sender_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage creates a message stamped with the current time
func NewChatMessage(roomID, senderID uint64, content string) *ChatMessage {
	return &ChatMessage{
		RoomID:    roomID,
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
