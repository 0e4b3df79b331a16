package models

import "time"

// ChatRoom is a named channel with a persisted message history. Deleting a
// room does not cascade to its members or messages.
type ChatRoom struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewChatRoom creates a chat room stamped with the current time
func NewChatRoom(name string) *ChatRoom {
	return &ChatRoom{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
