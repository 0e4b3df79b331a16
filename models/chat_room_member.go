package models

// ChatRoomMember records that a user belongs to a room. These rows are
// record-keeping only: the live broadcaster never consults them, and joining
// a room over the socket requires no membership row.
type ChatRoomMember struct {
	ID     uint64 `gorm:"primaryKey" json:"id"`
	RoomID uint64 `json:"room_id"`
	UserID uint64 `json:"user_id"`
}
