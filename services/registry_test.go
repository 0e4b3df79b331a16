package services

import (
	"sync"
	"testing"
)

type emittedEvent struct {
	name string
	args []interface{}
}

// fakeSubscriber records every event emitted to it
type fakeSubscriber struct {
	mut    sync.Mutex
	events []emittedEvent
}

func (f *fakeSubscriber) Emit(event string, args ...interface{}) {
	f.mut.Lock()
	defer f.mut.Unlock()
	f.events = append(f.events, emittedEvent{name: event, args: args})
}

func (f *fakeSubscriber) eventCount() int {
	f.mut.Lock()
	defer f.mut.Unlock()
	return len(f.events)
}

func TestRegistryJoinIsIdempotent(t *testing.T) {
	registry := NewRoomRegistry()
	sub := &fakeSubscriber{}

	registry.Join("42", sub)
	registry.Join("42", sub)
	if n := registry.RoomLen("42"); n != 1 {
		t.Fatalf("expected 1 subscriber after double join, got %d", n)
	}

	// A single leave must fully unsubscribe, with no residual
	// double-subscription left behind
	registry.Leave("42", sub)
	if n := registry.RoomLen("42"); n != 0 {
		t.Fatalf("expected 0 subscribers after leave, got %d", n)
	}
	registry.Broadcast("42", "new_message", "hello")
	if sub.eventCount() != 0 {
		t.Fatalf("unsubscribed connection still received %d events", sub.eventCount())
	}
}

func TestRegistryLeaveWithoutJoin(t *testing.T) {
	registry := NewRoomRegistry()
	sub := &fakeSubscriber{}

	// Must be a no-op, not a panic
	registry.Leave("42", sub)
	if n := registry.RoomLen("42"); n != 0 {
		t.Fatalf("expected empty room, got %d subscribers", n)
	}
}

func TestRegistryBroadcastIsScopedToRoom(t *testing.T) {
	registry := NewRoomRegistry()
	first := &fakeSubscriber{}
	second := &fakeSubscriber{}
	other := &fakeSubscriber{}

	registry.Join("42", first)
	registry.Join("42", second)
	registry.Join("7", other)

	registry.Broadcast("42", "new_message", "hello")

	if first.eventCount() != 1 {
		t.Errorf("first subscriber got %d events, want 1", first.eventCount())
	}
	if second.eventCount() != 1 {
		t.Errorf("second subscriber got %d events, want 1", second.eventCount())
	}
	if other.eventCount() != 0 {
		t.Errorf("subscriber in another room got %d events, want 0", other.eventCount())
	}
}

func TestRegistryRemoveAll(t *testing.T) {
	registry := NewRoomRegistry()
	sub := &fakeSubscriber{}

	registry.Join("1", sub)
	registry.Join("2", sub)
	registry.RemoveAll(sub)

	if registry.RoomLen("1") != 0 || registry.RoomLen("2") != 0 {
		t.Fatal("RemoveAll left residual subscriptions behind")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	registry := NewRoomRegistry()
	var wg sync.WaitGroup

	// Concurrent joins, leaves, and broadcasts must not corrupt the
	// subscriber sets
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := &fakeSubscriber{}
			registry.Join("42", sub)
			registry.Broadcast("42", "new_message", "hello")
			registry.Leave("42", sub)
		}()
	}
	wg.Wait()

	if n := registry.RoomLen("42"); n != 0 {
		t.Fatalf("expected empty room after all leaves, got %d", n)
	}
}
