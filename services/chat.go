package services

import (
	"errors"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/gorm"
)

// ChatService manages persisted chat rooms, memberships, and message
// history. The live broadcast side lives in SocketsService.
type ChatService struct {
	DB *gorm.DB
}

// GetRoom gets the chat room with the provided id, or nil if it does not
// exist
func (s *ChatService) GetRoom(id uint64) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := s.DB.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// ListRooms gets all of the chat rooms
func (s *ChatService) ListRooms() ([]*models.ChatRoom, error) {
	var rooms []*models.ChatRoom
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom persists a new chat room
func (s *ChatService) CreateRoom(room *models.ChatRoom) error {
	return s.DB.Create(room).Error
}

// DeleteRoom deletes a chat room. Members and messages of the room are left
// in place.
func (s *ChatService) DeleteRoom(room *models.ChatRoom) error {
	return s.DB.Delete(room).Error
}

// GetMember gets the membership row with the provided id, or nil
func (s *ChatService) GetMember(id uint64) (*models.ChatRoomMember, error) {
	var member models.ChatRoomMember
	err := s.DB.First(&member, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// ListMembers gets all of the membership rows
func (s *ChatService) ListMembers() ([]*models.ChatRoomMember, error) {
	var members []*models.ChatRoomMember
	if err := s.DB.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CreateMember persists a new membership row
func (s *ChatService) CreateMember(member *models.ChatRoomMember) error {
	return s.DB.Create(member).Error
}

// DeleteMember deletes a membership row
func (s *ChatService) DeleteMember(member *models.ChatRoomMember) error {
	return s.DB.Delete(member).Error
}

// CreateMessage persists a new chat message
func (s *ChatService) CreateMessage(msg *models.ChatMessage) error {
	return s.DB.Create(msg).Error
}

// ListMessages gets message history oldest-first, for every room or for a
// single room when roomID is non-nil
func (s *ChatService) ListMessages(roomID *uint64) ([]*models.ChatMessage, error) {
	query := s.DB.Order("timestamp ASC")
	if roomID != nil {
		query = query.Where("room_id = ?", *roomID)
	}
	var msgs []*models.ChatMessage
	if err := query.Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
