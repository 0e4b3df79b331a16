package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestChatService(t *testing.T) *ChatService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.ChatRoom{},
		&models.ChatRoomMember{},
		&models.ChatMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return &ChatService{DB: db}
}

func TestChatRoomRoundTrip(t *testing.T) {
	chat := newTestChatService(t)

	room := models.NewChatRoom("general")
	if err := chat.CreateRoom(room); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if room.ID == 0 {
		t.Fatal("CreateRoom did not assign an id")
	}

	got, err := chat.GetRoom(room.ID)
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if got == nil || got.Name != "general" {
		t.Fatalf("GetRoom returned %+v", got)
	}

	if err := chat.DeleteRoom(room); err != nil {
		t.Fatalf("DeleteRoom failed: %v", err)
	}
	got, err = chat.GetRoom(room.ID)
	if err != nil {
		t.Fatalf("GetRoom after delete failed: %v", err)
	}
	if got != nil {
		t.Fatal("deleted room still readable")
	}
}

func TestGetRoomMissing(t *testing.T) {
	chat := newTestChatService(t)
	room, err := chat.GetRoom(12345)
	if err != nil {
		t.Fatalf("GetRoom returned error for missing room: %v", err)
	}
	if room != nil {
		t.Fatalf("GetRoom returned %+v for missing room", room)
	}
}

func TestDeleteRoomDoesNotCascade(t *testing.T) {
	chat := newTestChatService(t)

	room := models.NewChatRoom("standup")
	if err := chat.CreateRoom(room); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	member := &models.ChatRoomMember{RoomID: room.ID, UserID: 3}
	if err := chat.CreateMember(member); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}
	msg := models.NewChatMessage(room.ID, 3, "morning")
	if err := chat.CreateMessage(msg); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	if err := chat.DeleteRoom(room); err != nil {
		t.Fatalf("DeleteRoom failed: %v", err)
	}

	// Member and message rows stay behind
	members, err := chat.ListMembers()
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 1 {
		t.Errorf("room deletion cascaded to members: %d left, want 1", len(members))
	}
	msgs, err := chat.ListMessages(&room.ID)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != 1 {
		t.Errorf("room deletion cascaded to messages: %d left, want 1", len(msgs))
	}
}

func TestListMessagesFilterAndOrder(t *testing.T) {
	chat := newTestChatService(t)

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	older := models.NewChatMessage(1, 5, "first")
	older.Timestamp = base
	newer := models.NewChatMessage(1, 6, "second")
	newer.Timestamp = base.Add(time.Minute)
	elsewhere := models.NewChatMessage(2, 5, "other room")
	elsewhere.Timestamp = base
	for _, msg := range []*models.ChatMessage{newer, older, elsewhere} {
		if err := chat.CreateMessage(msg); err != nil {
			t.Fatalf("CreateMessage failed: %v", err)
		}
	}

	roomID := uint64(1)
	msgs, err := chat.ListMessages(&roomID)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages for room 1, want 2", len(msgs))
	}
	if msgs[0].Content != "first" || msgs[1].Content != "second" {
		t.Errorf("messages out of order: %q then %q", msgs[0].Content, msgs[1].Content)
	}

	all, err := chat.ListMessages(nil)
	if err != nil {
		t.Fatalf("ListMessages(nil) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d messages unfiltered, want 3", len(all))
	}
}
