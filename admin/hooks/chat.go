package hooks

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListChatRooms(chatService *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := chatService.ListRooms()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, rooms)
	}
}

func GetChatRoom(chatService *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		room, err := chatService.GetRoom(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if room == nil {
			notFound(c, "Chat room not found")
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

type ChatRoomReq struct {
	Name *string `json:"name"`
}

func CreateChatRoom(chatService *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRoomReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "name is required")
			return
		}
		if req.Name == nil {
			badRequest(c, "name is required")
			return
		}
		room := models.NewChatRoom(*req.Name)
		if err := chatService.CreateRoom(room); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Chat room created",
			"room_id": room.ID,
		})
	}
}

// DeleteChatRoom deletes the room row only. Members and messages of the
// room stay behind.
func DeleteChatRoom(chatService *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		room, err := chatService.GetRoom(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if room == nil {
			notFound(c, "Chat room not found")
			return
		}
		if err := chatService.DeleteRoom(room); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Chat room deleted"})
	}
}

func ListChatMembers(chatService *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := chatService.ListMembers()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

func GetChatMember(chatService *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		member, err := chatService.GetMember(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if member == nil {
			notFound(c, "Chat room member not found")
			return
		}
		c.JSON(http.StatusOK, member)
	}
}

type ChatMemberReq struct {
	RoomID *uint64 `json:"room_id"`
	UserID *uint64 `json:"user_id"`
}

func CreateChatMember(chatService *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatMemberReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "room_id and user_id are required")
			return
		}
		if req.RoomID == nil || req.UserID == nil {
			badRequest(c, "room_id and user_id are required")
			return
		}
		member := &models.ChatRoomMember{
			RoomID: *req.RoomID,
			UserID: *req.UserID,
		}
		if err := chatService.CreateMember(member); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":   "Chat room member created",
			"member_id": member.ID,
		})
	}
}

func DeleteChatMember(chatService *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		member, err := chatService.GetMember(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if member == nil {
			notFound(c, "Chat room member not found")
			return
		}
		if err := chatService.DeleteMember(member); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Chat room member deleted"})
	}
}

// ListChatMessages returns message history oldest-first, optionally
// filtered to one room via the room_id query param. There is no replay over
// the socket; clients that join late query here instead.
func ListChatMessages(chatService *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roomID *uint64
		if raw := c.Query("room_id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				badRequest(c, "room_id must be an integer")
				return
			}
			roomID = &id
		}
		msgs, err := chatService.ListMessages(roomID)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}
