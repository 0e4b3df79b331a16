package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/godocompany/employeadmin-api/models"
	socketio "github.com/googollee/go-socket.io"
)

// SocketsService owns the real-time chat surface. It registers the socket
// event handlers and fans persisted messages out to room subscribers via
// the registry. Malformed events are dropped without telling the sender;
// that matches the deployed behavior and clients rely on it.
type SocketsService struct {
	Server      *socketio.Server
	ChatService *ChatService
	Registry    *RoomRegistry
}

func (s *SocketsService) Setup() {

	// Add handlers to the socket server
	s.Server.OnConnect("/", func(conn socketio.Conn) error {
		fmt.Println("client connected: ", conn.RemoteAddr().String())
		return nil
	})

	// When a socket disconnects, drop all of its room subscriptions
	s.Server.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		fmt.Println("client disconnected: ", conn.RemoteAddr().String())
		s.Registry.RemoveAll(conn)
	})

	// Register all of the event handlers
	s.Server.OnEvent("/", "join", s.OnJoin)
	s.Server.OnEvent("/", "leave", s.OnLeave)
	s.Server.OnEvent("/", "send_message", s.OnSendMessage)

}

// roomKey converts a room id to the string key used for the live room.
// Room id 0 never forms a key because the handlers drop it first.
func roomKey(roomID uint64) string {
	return strconv.FormatUint(roomID, 10)
}

//====================================================================================================
// join event handler
// Called when a connection joins a chat room
//====================================================================================================

type JoinMsg struct {
	RoomID uint64 `json:"room_id"`
	UserID uint64 `json:"user_id"`
}

func (s *SocketsService) OnJoin(conn socketio.Conn, data JoinMsg) error {
	if s.joinRoom(conn, &data) {
		fmt.Println("user", data.UserID, "joined room", data.RoomID)
	}
	return nil
}

// joinRoom subscribes sub to the room. There is no check that the room
// exists or that the user is a known employee, and membership rows are not
// consulted. Re-joining a joined room has no additional effect.
func (s *SocketsService) joinRoom(sub Subscriber, data *JoinMsg) bool {
	if data.RoomID == 0 || data.UserID == 0 {
		return false
	}
	s.Registry.Join(roomKey(data.RoomID), sub)
	return true
}

//====================================================================================================
// leave event handler
// Called when a connection leaves a chat room
//====================================================================================================

type LeaveMsg struct {
	RoomID uint64 `json:"room_id"`
	UserID uint64 `json:"user_id"`
}

func (s *SocketsService) OnLeave(conn socketio.Conn, data LeaveMsg) error {
	if s.leaveRoom(conn, &data) {
		fmt.Println("user", data.UserID, "left room", data.RoomID)
	}
	return nil
}

// leaveRoom removes sub's subscription to the room. No-op if sub is not
// subscribed.
func (s *SocketsService) leaveRoom(sub Subscriber, data *LeaveMsg) bool {
	if data.RoomID == 0 || data.UserID == 0 {
		return false
	}
	s.Registry.Leave(roomKey(data.RoomID), sub)
	return true
}

//====================================================================================================
// send_message event handler
// Called when a connection sends a message to a chat room
//====================================================================================================

type SendMessageMsg struct {
	RoomID   uint64 `json:"room_id"`
	SenderID uint64 `json:"sender_id"`
	Content  string `json:"content"`
}

func (s *SocketsService) OnSendMessage(conn socketio.Conn, data SendMessageMsg) error {
	return s.sendMessage(&data)
}

// sendMessage persists the message and then broadcasts it to every current
// subscriber of the room, the sender included. If any field is missing the
// event is silently dropped. If the write fails, nothing is broadcast.
func (s *SocketsService) sendMessage(data *SendMessageMsg) error {

	// Drop malformed events outright. The sender gets no error back.
	if data.RoomID == 0 || data.SenderID == 0 || len(data.Content) == 0 {
		return nil
	}

	// Persist the message first, so the broadcast carries the generated id
	// and timestamp
	msg := models.NewChatMessage(data.RoomID, data.SenderID, data.Content)
	if err := s.ChatService.CreateMessage(msg); err != nil {
		return err
	}

	// Broadcast the persisted message to the room
	s.Registry.Broadcast(
		roomKey(msg.RoomID),
		"new_message",
		map[string]interface{}{
			"id":        msg.ID,
			"room_id":   msg.RoomID,
			"sender_id": msg.SenderID,
			"content":   msg.Content,
			"timestamp": msg.Timestamp.UTC().Format(time.RFC3339),
		},
	)

	return nil

}
