package services

import (
	"path/filepath"
	"testing"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestSockets(t *testing.T) (*SocketsService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.ChatMessage{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return &SocketsService{
		ChatService: &ChatService{DB: db},
		Registry:    NewRoomRegistry(),
	}, db
}

func TestSendMessageFanOut(t *testing.T) {
	sockets, db := newTestSockets(t)

	first := &fakeSubscriber{}
	second := &fakeSubscriber{}
	other := &fakeSubscriber{}
	sockets.joinRoom(first, &JoinMsg{RoomID: 42, UserID: 1})
	sockets.joinRoom(second, &JoinMsg{RoomID: 42, UserID: 2})
	sockets.joinRoom(other, &JoinMsg{RoomID: 7, UserID: 3})

	err := sockets.sendMessage(&SendMessageMsg{RoomID: 42, SenderID: 1, Content: "hi"})
	if err != nil {
		t.Fatalf("sendMessage failed: %v", err)
	}

	// Both room members receive the message, the sender included
	for name, sub := range map[string]*fakeSubscriber{"first": first, "second": second} {
		if sub.eventCount() != 1 {
			t.Fatalf("%s subscriber got %d events, want 1", name, sub.eventCount())
		}
		if sub.events[0].name != "new_message" {
			t.Errorf("%s subscriber got event %q, want new_message", name, sub.events[0].name)
		}
		payload, ok := sub.events[0].args[0].(map[string]interface{})
		if !ok {
			t.Fatalf("%s subscriber payload has type %T", name, sub.events[0].args[0])
		}
		if payload["content"] != "hi" {
			t.Errorf("payload content = %v, want hi", payload["content"])
		}
		if payload["id"] == uint64(0) {
			t.Error("payload carries no generated id")
		}
		if payload["timestamp"] == "" {
			t.Error("payload carries no timestamp")
		}
	}

	// A subscriber of a different room receives nothing
	if other.eventCount() != 0 {
		t.Errorf("subscriber in room 7 got %d events, want 0", other.eventCount())
	}

	// The message was persisted before the fan-out
	var count int64
	db.Model(&models.ChatMessage{}).Count(&count)
	if count != 1 {
		t.Errorf("persisted %d messages, want 1", count)
	}
}

func TestSendMessageMissingFieldsIsDropped(t *testing.T) {
	sockets, db := newTestSockets(t)
	sub := &fakeSubscriber{}
	sockets.joinRoom(sub, &JoinMsg{RoomID: 5, UserID: 5})

	// Each of these is malformed and must be dropped without an error,
	// a write, or a broadcast
	malformed := []*SendMessageMsg{
		{RoomID: 0, SenderID: 5, Content: "hi"},
		{RoomID: 5, SenderID: 0, Content: "hi"},
		{RoomID: 5, SenderID: 5, Content: ""},
	}
	for _, msg := range malformed {
		if err := sockets.sendMessage(msg); err != nil {
			t.Fatalf("malformed event returned error: %v", err)
		}
	}

	var count int64
	db.Model(&models.ChatMessage{}).Count(&count)
	if count != 0 {
		t.Errorf("malformed events persisted %d messages, want 0", count)
	}
	if sub.eventCount() != 0 {
		t.Errorf("malformed events broadcast %d events, want 0", sub.eventCount())
	}
}

func TestSendMessagePersistFailureAbortsFanOut(t *testing.T) {
	sockets, db := newTestSockets(t)
	sub := &fakeSubscriber{}
	sockets.joinRoom(sub, &JoinMsg{RoomID: 42, UserID: 1})

	// Break the message table so the write fails
	if err := db.Migrator().DropTable(&models.ChatMessage{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	err := sockets.sendMessage(&SendMessageMsg{RoomID: 42, SenderID: 1, Content: "hi"})
	if err == nil {
		t.Fatal("expected an error from the failed write")
	}
	if sub.eventCount() != 0 {
		t.Errorf("failed write still broadcast %d events, want 0", sub.eventCount())
	}
}

func TestJoinLeaveThroughSockets(t *testing.T) {
	sockets, _ := newTestSockets(t)
	sub := &fakeSubscriber{}

	// Joining twice then leaving once leaves the connection unsubscribed
	sockets.joinRoom(sub, &JoinMsg{RoomID: 9, UserID: 4})
	sockets.joinRoom(sub, &JoinMsg{RoomID: 9, UserID: 4})
	sockets.leaveRoom(sub, &LeaveMsg{RoomID: 9, UserID: 4})

	if n := sockets.Registry.RoomLen("9"); n != 0 {
		t.Fatalf("expected 0 subscribers, got %d", n)
	}

	// Join events missing a field are dropped
	if sockets.joinRoom(sub, &JoinMsg{RoomID: 0, UserID: 4}) {
		t.Error("join with missing room_id was not dropped")
	}
	if sockets.joinRoom(sub, &JoinMsg{RoomID: 9, UserID: 0}) {
		t.Error("join with missing user_id was not dropped")
	}
}
