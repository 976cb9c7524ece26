package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/alimhan/buzzroom/internal/api/http/converter"
	"github.com/alimhan/buzzroom/internal/events"
	"github.com/alimhan/buzzroom/internal/services/game"
)

// Keepalive timing, overridable in tests
var (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WatchRoom handles GET /game/rooms/:roomId/watch. The client holds the
// socket open and receives a JSON room snapshot after every mutating
// operation, ending with a deleted snapshot when the room is torn down.
func (c *GameController) WatchRoom(ctx *gin.Context) {
	roomID := ctx.Param("roomId")

	// Subscribe before the initial read so a mutation landing between the
	// two is delivered instead of lost
	sub := c.hub.Subscribe(roomID)

	out, err := c.games.GetRoom(ctx.Request.Context(), &game.GetRoomInput{RoomID: roomID})
	if err != nil {
		sub.Close()
		c.renderError(ctx, err)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		sub.Close()
		c.log.Warn("websocket upgrade failed",
			slog.String("room_id", roomID),
			slog.Any("error", err))
		return
	}

	go c.pumpSnapshots(conn, sub, out)

	// Reader loop: the client sends nothing meaningful, but reading is what
	// detects the peer going away and answers the keepalive pings
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	sub.Close()
	conn.Close()
}

func (c *GameController) pumpSnapshots(conn *websocket.Conn, sub *events.Subscription, first *game.GetRoomOutput) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer conn.Close()

	initial := events.Snapshot{
		Room:    converter.RoomToAPI(first.Room),
		Players: converter.PlayersToAPI(first.Players),
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(initial); err != nil {
		return
	}

	for {
		select {
		case snap, ok := <-sub.C:
			if !ok {
				c.writeClose(conn)
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
			if snap.Deleted {
				c.writeClose(conn)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *GameController) writeClose(conn *websocket.Conn) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
