package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimhan/buzzroom/internal/api/http/converter"
	"github.com/alimhan/buzzroom/internal/models"
)

func snapshotFor(roomID string) Snapshot {
	return Snapshot{
		Room: &converter.RoomAPI{ID: roomID},
	}
}

func TestSnapshotOmitsJoinCredentials(t *testing.T) {
	room := &models.Room{
		ID:           "room-1",
		RoomNumber:   "4242",
		RoomPassword: "super-secret",
		FirstBuzzer:  "p1",
	}

	data, err := json.Marshal(Snapshot{Room: converter.RoomToAPI(room)})
	require.NoError(t, err)

	payload := string(data)
	assert.NotContains(t, payload, "super-secret")
	assert.Contains(t, payload, `"roomNumber":"4242"`)
	assert.Contains(t, payload, `"firstBuzzer":"p1"`)
}

func TestSubscribePublish(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe("room-1")
	defer sub.Close()

	hub.Publish("room-1", snapshotFor("room-1"))

	select {
	case snap := <-sub.C:
		require.NotNil(t, snap.Room)
		assert.Equal(t, "room-1", snap.Room.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a snapshot")
	}
}

func TestPublishIsScopedToRoom(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe("room-1")
	defer sub.Close()

	hub.Publish("room-2", snapshotFor("room-2"))

	select {
	case <-sub.C:
		t.Fatal("subscriber received a snapshot for another room")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCloseStopsDelivery(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe("room-1")
	assert.Equal(t, 1, hub.WatcherCount("room-1"))

	sub.Close()
	assert.Equal(t, 0, hub.WatcherCount("room-1"))

	// Closing twice is safe
	sub.Close()

	hub.Publish("room-1", snapshotFor("room-1"))
}

func TestCloseRoomSendsDeletedSnapshot(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe("room-1")

	hub.CloseRoom("room-1")

	select {
	case snap := <-sub.C:
		assert.True(t, snap.Deleted)
	case <-time.After(time.Second):
		t.Fatal("expected a deletion snapshot")
	}

	assert.Equal(t, 0, hub.WatcherCount("room-1"))
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe("room-1")
	defer sub.Close()

	// Never drained: publishes beyond the buffer are dropped, not blocked
	done := make(chan struct{})
	go func() {
		for i := 0; i < snapshotBuffer*3; i++ {
			hub.Publish("room-1", snapshotFor("room-1"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestMultipleSubscribersAllReceive(t *testing.T) {
	hub := NewHub()

	first := hub.Subscribe("room-1")
	defer first.Close()
	second := hub.Subscribe("room-1")
	defer second.Close()

	assert.Equal(t, 2, hub.WatcherCount("room-1"))

	hub.Publish("room-1", snapshotFor("room-1"))

	for _, sub := range []*Subscription{first, second} {
		select {
		case snap := <-sub.C:
			require.NotNil(t, snap.Room)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the snapshot")
		}
	}
}
