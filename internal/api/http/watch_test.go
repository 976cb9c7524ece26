package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/alimhan/buzzroom/internal/api/http/converter"
	"github.com/alimhan/buzzroom/internal/common/clock"
	"github.com/alimhan/buzzroom/internal/common/uuid"
	"github.com/alimhan/buzzroom/internal/events"
	"github.com/alimhan/buzzroom/internal/models"
	questionRepo "github.com/alimhan/buzzroom/internal/repositories/question"
	roomRepo "github.com/alimhan/buzzroom/internal/repositories/room"
	"github.com/alimhan/buzzroom/internal/services/game"
)

type WatchRoomTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	hub    *events.Hub
	server *httptest.Server
	roomID string
}

func (s *WatchRoomTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	questions, err := questionRepo.NewRedis(&questionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	games, err := game.New(&game.Config{
		RoomRepo:     rooms,
		QuestionRepo: questions,
		Clock:        clock.New(),
		UUID:         uuid.New(),
		Logger:       log,
	})
	s.Require().NoError(err)

	s.hub = events.NewHub()
	controller := NewGameController(games, s.hub, log)
	s.server = httptest.NewServer(SetupRouter(controller, nil))

	created, err := games.CreateRoom(context.Background(), &game.CreateRoomInput{
		RoomNumber:   "4242",
		RoomPassword: "super-secret",
		Host:         &models.Player{ID: "host-id", Name: "Host"},
	})
	s.Require().NoError(err)
	s.roomID = created.RoomID
}

func (s *WatchRoomTestSuite) TearDownTest() {
	s.server.Close()
	s.client.Close()
	s.mr.Close()
}

func TestWatchRoomTestSuite(t *testing.T) {
	suite.Run(t, new(WatchRoomTestSuite))
}

func (s *WatchRoomTestSuite) watchURL(roomID string) string {
	return "ws" + strings.TrimPrefix(s.server.URL, "http") + "/game/rooms/" + roomID + "/watch"
}

func (s *WatchRoomTestSuite) readSnapshot(conn *websocket.Conn) (events.Snapshot, string) {
	s.T().Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	s.Require().NoError(err)

	var snap events.Snapshot
	s.Require().NoError(json.Unmarshal(data, &snap))
	return snap, string(data)
}

func (s *WatchRoomTestSuite) TestWatchStreamsSnapshots() {
	conn, resp, err := websocket.DefaultDialer.Dial(s.watchURL(s.roomID), nil)
	s.Require().NoError(err)
	defer resp.Body.Close()
	defer conn.Close()

	// The initial snapshot carries the API shape, never the join credential
	snap, payload := s.readSnapshot(conn)
	s.Require().NotNil(snap.Room)
	s.Equal(s.roomID, snap.Room.ID)
	s.Contains(payload, `"roomNumber":"4242"`)
	s.NotContains(payload, "super-secret")

	s.hub.Publish(s.roomID, events.Snapshot{
		Room: &converter.RoomAPI{ID: s.roomID, CurrentQuestionID: "2"},
	})

	snap, payload = s.readSnapshot(conn)
	s.Require().NotNil(snap.Room)
	s.Equal("2", snap.Room.CurrentQuestionID)
	s.NotContains(payload, "super-secret")

	s.hub.CloseRoom(s.roomID)

	snap, _ = s.readSnapshot(conn)
	s.True(snap.Deleted)
}

func (s *WatchRoomTestSuite) TestWatchUnknownRoomRejected() {
	conn, resp, err := websocket.DefaultDialer.Dial(s.watchURL("nope"), nil)
	s.Require().Error(err)
	s.Require().Nil(conn)
	s.Require().NotNil(resp)
	defer resp.Body.Close()
	s.Equal(404, resp.StatusCode)
}

func (s *WatchRoomTestSuite) TestWatchSurvivesIdlePeriods() {
	restorePong, restorePing := pongWait, pingPeriod
	pongWait, pingPeriod = 200*time.Millisecond, 50*time.Millisecond
	defer func() { pongWait, pingPeriod = restorePong, restorePing }()

	conn, resp, err := websocket.DefaultDialer.Dial(s.watchURL(s.roomID), nil)
	s.Require().NoError(err)
	defer resp.Body.Close()
	defer conn.Close()

	_, _ = s.readSnapshot(conn)

	// Stay idle well past the read deadline; the server's pings and the
	// client's automatic pongs must keep the socket alive
	go func() {
		time.Sleep(3 * pongWait)
		s.hub.Publish(s.roomID, events.Snapshot{
			Room: &converter.RoomAPI{ID: s.roomID, CurrentQuestionID: "3"},
		})
	}()

	snap, _ := s.readSnapshot(conn)
	s.Require().NotNil(snap.Room)
	s.Equal("3", snap.Room.CurrentQuestionID)
}
