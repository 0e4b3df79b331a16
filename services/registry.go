package services

import "sync"

// Subscriber is a live connection that can receive broadcast events.
// socketio.Conn satisfies it.
type Subscriber interface {
	Emit(event string, args ...interface{})
}

// RoomRegistry owns the mapping from room keys to the set of subscribers
// currently in each room. It is safe for concurrent use from many socket
// connections; rooms are independent so a single lock over the map is
// enough.
type RoomRegistry struct {
	rooms map[string]map[Subscriber]struct{}
	mut   sync.RWMutex
}

// NewRoomRegistry creates an empty room registry
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: map[string]map[Subscriber]struct{}{},
	}
}

// Join subscribes sub to the room. Joining a room twice is the same as
// joining it once.
func (r *RoomRegistry) Join(room string, sub Subscriber) {
	r.mut.Lock()
	defer r.mut.Unlock()
	subs, ok := r.rooms[room]
	if !ok {
		subs = map[Subscriber]struct{}{}
		r.rooms[room] = subs
	}
	subs[sub] = struct{}{}
}

// Leave removes sub's subscription to the room. It is a no-op if sub is
// not subscribed.
func (r *RoomRegistry) Leave(room string, sub Subscriber) {
	r.mut.Lock()
	defer r.mut.Unlock()
	subs, ok := r.rooms[room]
	if !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(r.rooms, room)
	}
}

// RemoveAll removes sub from every room it is subscribed to. Called when a
// connection goes away.
func (r *RoomRegistry) RemoveAll(sub Subscriber) {
	r.mut.Lock()
	defer r.mut.Unlock()
	for room, subs := range r.rooms {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(r.rooms, room)
		}
	}
}

// Broadcast emits an event to every current subscriber of the room. The
// subscriber set is copied under the lock so a slow Emit never blocks
// membership changes.
func (r *RoomRegistry) Broadcast(room, event string, args ...interface{}) {

	// Copy the current subscribers of the room
	r.mut.RLock()
	subs := make([]Subscriber, 0, len(r.rooms[room]))
	for sub := range r.rooms[room] {
		subs = append(subs, sub)
	}
	r.mut.RUnlock()

	// Emit the event to each of them
	for _, sub := range subs {
		sub.Emit(event, args...)
	}

}

// RoomLen returns the number of subscribers currently in the room
func (r *RoomRegistry) RoomLen(room string) int {
	r.mut.RLock()
	defer r.mut.RUnlock()
	return len(r.rooms[room])
}
