package events

import (
	"sync"

	"github.com/alimhan/buzzroom/internal/api/http/converter"
)

// snapshotBuffer is the per-subscriber channel depth. A watcher that falls
// this far behind starts losing intermediate snapshots; the latest state
// always gets through eventually.
const snapshotBuffer = 8

// Snapshot is the room state pushed to watchers after every mutating
// operation. It carries the API shapes, not the models: watchers are
// clients, and the room password must never reach them.
type Snapshot struct {
	Room    *converter.RoomAPI     `json:"room"`
	Players []*converter.PlayerAPI `json:"players"`

	// Deleted marks the final snapshot of a room that was torn down
	Deleted bool `json:"deleted"`
}

// Subscription is one watcher's feed of room snapshots
type Subscription struct {
	// C delivers snapshots; it is closed when the room is deleted or the
	// subscription is cancelled
	C <-chan Snapshot

	ch     chan Snapshot
	roomID string
	hub    *Hub
	once   sync.Once
}

// Close cancels the subscription and releases its channel
func (s *Subscription) Close() {
	s.hub.unsubscribe(s)
}

// Hub fans room snapshots out to websocket watchers. Rooms are independent:
// publishing to one room never touches another room's subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe registers a watcher for a room's snapshots
func (h *Hub) Subscribe(roomID string) *Subscription {
	ch := make(chan Snapshot, snapshotBuffer)
	sub := &Subscription{
		C:      ch,
		ch:     ch,
		roomID: roomID,
		hub:    h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[roomID] == nil {
		h.subs[roomID] = make(map[*Subscription]struct{})
	}
	h.subs[roomID][sub] = struct{}{}

	return sub
}

// Publish delivers a snapshot to every watcher of the room. Sends never
// block: a full subscriber buffer drops the snapshot for that subscriber.
func (h *Hub) Publish(roomID string, snap Snapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[roomID] {
		select {
		case sub.ch <- snap:
		default:
		}
	}
}

// CloseRoom sends a final deleted snapshot and closes every subscription for
// the room
func (h *Hub) CloseRoom(roomID string) {
	h.mu.Lock()
	subs := h.subs[roomID]
	delete(h.subs, roomID)
	h.mu.Unlock()

	for sub := range subs {
		select {
		case sub.ch <- Snapshot{Deleted: true}:
		default:
		}
		sub.once.Do(func() { close(sub.ch) })
	}
}

// WatcherCount returns the number of active subscriptions for a room
func (h *Hub) WatcherCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[roomID])
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	if subs, ok := h.subs[sub.roomID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.subs, sub.roomID)
		}
	}
	h.mu.Unlock()

	sub.once.Do(func() { close(sub.ch) })
}
