package room

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/alimhan/buzzroom/internal/common/clock/mocks"
	"github.com/alimhan/buzzroom/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr        *miniredis.Miniredis
	client    *redis.Client
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	repo      Repository
	testNow   time.Time
	stampTime time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.stampTime = s.testNow.Add(time.Minute)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockClock.EXPECT().Now().Return(s.stampTime).AnyTimes()

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTestRoom(id string) *models.Room {
	return &models.Room{
		ID:           id,
		RoomNumber:   "4242",
		RoomPassword: "secret",
		Host: &models.Player{
			ID:   "host-id",
			Name: "Host",
		},
		CurrentQuestionID: models.FirstQuestionID,
		CreatedAt:         s.testNow,
		UpdatedAt:         s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetRoom() {
	ctx := context.Background()

	out, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)
	s.Equal("room-1", out.RoomID)

	room, err := s.repo.GetRoom(ctx, &GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal("room-1", room.ID)
	s.Equal("4242", room.RoomNumber)
	s.Equal("host-id", room.HostID())
	s.Equal(models.FirstQuestionID, room.CurrentQuestionID)
	s.False(room.BuzzingOpen)
	s.Empty(room.FirstBuzzer)
	s.Equal(models.BuzzStateIdle, room.BuzzState())
}

func (s *RedisRepositoryTestSuite) TestCreateRoomIsExclusive() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	// Same credentials, different ID
	dup := s.newTestRoom("room-2")
	_, err = s.repo.CreateRoom(ctx, &CreateRoomInput{Room: dup})
	s.Require().ErrorIs(err, ErrRoomExists)

	// The first room is untouched
	room, err := s.repo.GetRoom(ctx, &GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal("room-1", room.ID)
}

func (s *RedisRepositoryTestSuite) TestCreateRoomIDTakenLeavesCredentialsFree() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	// Same ID, fresh credentials
	dup := s.newTestRoom("room-1")
	dup.RoomNumber = "9999"
	_, err = s.repo.CreateRoom(ctx, &CreateRoomInput{Room: dup})
	s.Require().ErrorIs(err, ErrRoomExists)

	// The failed create reserved nothing, so the credentials stay usable
	_, err = s.repo.FindRoomByCredentials(ctx, &FindRoomByCredentialsInput{
		RoomNumber:   "9999",
		RoomPassword: "secret",
	})
	s.Require().ErrorIs(err, ErrRoomNotFound)

	fresh := s.newTestRoom("room-2")
	fresh.RoomNumber = "9999"
	_, err = s.repo.CreateRoom(ctx, &CreateRoomInput{Room: fresh})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "nope"})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestFindRoomByCredentials() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	room, err := s.repo.FindRoomByCredentials(ctx, &FindRoomByCredentialsInput{
		RoomNumber:   "4242",
		RoomPassword: "secret",
	})
	s.Require().NoError(err)
	s.Equal("room-1", room.ID)

	_, err = s.repo.FindRoomByCredentials(ctx, &FindRoomByCredentialsInput{
		RoomNumber:   "4242",
		RoomPassword: "wrong",
	})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpsertPlayerPreservesScore() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	player, err := s.repo.UpsertPlayer(ctx, &UpsertPlayerInput{
		RoomID: "room-1",
		Player: &models.Player{ID: "p1", Name: "Alice", Avatar: "cat"},
	})
	s.Require().NoError(err)
	s.Equal(0, player.Score)

	// Score the player, then reconnect with a fresh record
	_, err = s.repo.ClaimFirstBuzzer(ctx, &ClaimFirstBuzzerInput{RoomID: "room-1", PlayerID: "p1"})
	s.Require().NoError(err)
	settled, err := s.repo.SettleBuzz(ctx, &SettleBuzzInput{RoomID: "room-1", Delta: 10})
	s.Require().NoError(err)
	s.Require().True(settled.Settled)

	player, err = s.repo.UpsertPlayer(ctx, &UpsertPlayerInput{
		RoomID: "room-1",
		Player: &models.Player{ID: "p1", Name: "Alice B", Avatar: "dog"},
	})
	s.Require().NoError(err)
	s.Equal(10, player.Score)
	s.Equal("Alice B", player.Name)
	s.Equal("dog", player.Avatar)

	players, err := s.repo.ListPlayers(ctx, &ListPlayersInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(10, players[0].Score)
}

func (s *RedisRepositoryTestSuite) TestUpsertPlayerRoomNotFound() {
	_, err := s.repo.UpsertPlayer(context.Background(), &UpsertPlayerInput{
		RoomID: "nope",
		Player: &models.Player{ID: "p1", Name: "Alice"},
	})
	s.Require().ErrorIs(err, ErrRoomNotFound)

	// No orphan roster hash was written
	s.False(s.mr.Exists(playersKey("nope")))
}

func (s *RedisRepositoryTestSuite) TestListPlayersOrdering() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	for _, p := range []*models.Player{
		{ID: "p-c", Name: "Cara", Score: 10},
		{ID: "p-a", Name: "Alice", Score: 30},
		{ID: "p-b", Name: "Bob", Score: 10},
	} {
		// Upsert strips incoming scores, so write the roster hash directly
		s.seedPlayer("room-1", p)
	}

	players, err := s.repo.ListPlayers(ctx, &ListPlayersInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Require().Len(players, 3)

	// Score descending, player ID ascending on ties
	s.Equal("p-a", players[0].ID)
	s.Equal("p-b", players[1].ID)
	s.Equal("p-c", players[2].ID)
}

func (s *RedisRepositoryTestSuite) TestDeletePlayer() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	_, err = s.repo.UpsertPlayer(ctx, &UpsertPlayerInput{
		RoomID: "room-1",
		Player: &models.Player{ID: "p1", Name: "Alice"},
	})
	s.Require().NoError(err)
	_, err = s.repo.UpsertPlayer(ctx, &UpsertPlayerInput{
		RoomID: "room-1",
		Player: &models.Player{ID: "p2", Name: "Bob"},
	})
	s.Require().NoError(err)

	err = s.repo.DeletePlayer(ctx, &DeletePlayerInput{RoomID: "room-1", PlayerID: "p1"})
	s.Require().NoError(err)

	players, err := s.repo.ListPlayers(ctx, &ListPlayersInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("p2", players[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDeleteRoomCascades() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	_, err = s.repo.UpsertPlayer(ctx, &UpsertPlayerInput{
		RoomID: "room-1",
		Player: &models.Player{ID: "p1", Name: "Alice"},
	})
	s.Require().NoError(err)

	err = s.repo.DeleteRoom(ctx, &DeleteRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetRoom(ctx, &GetRoomInput{RoomID: "room-1"})
	s.Require().ErrorIs(err, ErrRoomNotFound)

	players, err := s.repo.ListPlayers(ctx, &ListPlayersInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Empty(players)

	// The credentials index is released with the room
	_, err = s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-3")})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestClaimFirstBuzzer() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	out, err := s.repo.ClaimFirstBuzzer(ctx, &ClaimFirstBuzzerInput{RoomID: "room-1", PlayerID: "p1"})
	s.Require().NoError(err)
	s.True(out.Accepted)
	s.Equal("p1", out.FirstBuzzer)

	room, err := s.repo.GetRoom(ctx, &GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.True(room.BuzzingOpen)
	s.Equal("p1", room.FirstBuzzer)
	s.Equal(models.BuzzStateClaimed, room.BuzzState())

	// A later claim loses without error
	out, err = s.repo.ClaimFirstBuzzer(ctx, &ClaimFirstBuzzerInput{RoomID: "room-1", PlayerID: "p2"})
	s.Require().NoError(err)
	s.False(out.Accepted)
	s.Equal("p1", out.FirstBuzzer)

	// Re-claiming by the holder is also a rejection, not a state change
	out, err = s.repo.ClaimFirstBuzzer(ctx, &ClaimFirstBuzzerInput{RoomID: "room-1", PlayerID: "p1"})
	s.Require().NoError(err)
	s.False(out.Accepted)
	s.Equal("p1", out.FirstBuzzer)
}

func (s *RedisRepositoryTestSuite) TestClaimFirstBuzzerRoomNotFound() {
	_, err := s.repo.ClaimFirstBuzzer(context.Background(), &ClaimFirstBuzzerInput{
		RoomID:   "nope",
		PlayerID: "p1",
	})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestConcurrentClaimsSingleWinner() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	const claimants = 16

	var wg sync.WaitGroup
	accepted := make(chan string, claimants)

	for i := 0; i < claimants; i++ {
		playerID := string(rune('a' + i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.repo.ClaimFirstBuzzer(ctx, &ClaimFirstBuzzerInput{
				RoomID:   "room-1",
				PlayerID: playerID,
			})
			if err == nil && out.Accepted {
				accepted <- playerID
			}
		}()
	}

	wg.Wait()
	close(accepted)

	winners := make([]string, 0, 1)
	for id := range accepted {
		winners = append(winners, id)
	}
	s.Require().Len(winners, 1)

	room, err := s.repo.GetRoom(ctx, &GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal(winners[0], room.FirstBuzzer)
	s.True(room.BuzzingOpen)
}

func (s *RedisRepositoryTestSuite) TestSettleBuzzAwardAndClear() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)
	_, err = s.repo.UpsertPlayer(ctx, &UpsertPlayerInput{
		RoomID: "room-1",
		Player: &models.Player{ID: "p1", Name: "Alice"},
	})
	s.Require().NoError(err)

	_, err = s.repo.ClaimFirstBuzzer(ctx, &ClaimFirstBuzzerInput{RoomID: "room-1", PlayerID: "p1"})
	s.Require().NoError(err)

	out, err := s.repo.SettleBuzz(ctx, &SettleBuzzInput{RoomID: "room-1", Delta: 10})
	s.Require().NoError(err)
	s.True(out.Settled)
	s.Equal("p1", out.PlayerID)
	s.Equal(10, out.NewScore)

	room, err := s.repo.GetRoom(ctx, &GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.False(room.BuzzingOpen)
	s.Empty(room.FirstBuzzer)
	s.Equal(models.BuzzStateIdle, room.BuzzState())

	// Settling again without a new claim changes nothing
	out, err = s.repo.SettleBuzz(ctx, &SettleBuzzInput{RoomID: "room-1", Delta: 10})
	s.Require().NoError(err)
	s.False(out.Settled)

	players, err := s.repo.ListPlayers(ctx, &ListPlayersInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(10, players[0].Score)
}

func (s *RedisRepositoryTestSuite) TestSettleBuzzPenaltyGoesNegative() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)
	_, err = s.repo.UpsertPlayer(ctx, &UpsertPlayerInput{
		RoomID: "room-1",
		Player: &models.Player{ID: "p1", Name: "Alice"},
	})
	s.Require().NoError(err)

	_, err = s.repo.ClaimFirstBuzzer(ctx, &ClaimFirstBuzzerInput{RoomID: "room-1", PlayerID: "p1"})
	s.Require().NoError(err)

	out, err := s.repo.SettleBuzz(ctx, &SettleBuzzInput{RoomID: "room-1", Delta: -10})
	s.Require().NoError(err)
	s.True(out.Settled)
	s.Equal(-10, out.NewScore)
}

func (s *RedisRepositoryTestSuite) TestSettleBuzzClaimantMissing() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	_, err = s.repo.ClaimFirstBuzzer(ctx, &ClaimFirstBuzzerInput{RoomID: "room-1", PlayerID: "ghost"})
	s.Require().NoError(err)

	_, err = s.repo.SettleBuzz(ctx, &SettleBuzzInput{RoomID: "room-1", Delta: 10})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestSetCurrentQuestion() {
	ctx := context.Background()

	_, err := s.repo.CreateRoom(ctx, &CreateRoomInput{Room: s.newTestRoom("room-1")})
	s.Require().NoError(err)

	err = s.repo.SetCurrentQuestion(ctx, &SetCurrentQuestionInput{
		RoomID:     "room-1",
		QuestionID: "7",
	})
	s.Require().NoError(err)

	room, err := s.repo.GetRoom(ctx, &GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal("7", room.CurrentQuestionID)

	// The mutation is stamped with the repository clock
	s.True(room.UpdatedAt.Equal(s.stampTime))
	s.True(room.CreatedAt.Equal(s.testNow))
}

func (s *RedisRepositoryTestSuite) TestSetCurrentQuestionRoomNotFound() {
	err := s.repo.SetCurrentQuestion(context.Background(), &SetCurrentQuestionInput{
		RoomID:     "nope",
		QuestionID: "7",
	})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

// seedPlayer writes a player record including its score, bypassing the
// score-preserving merge in UpsertPlayer
func (s *RedisRepositoryTestSuite) seedPlayer(roomID string, player *models.Player) {
	s.T().Helper()

	data, err := json.Marshal(player)
	s.Require().NoError(err)
	s.Require().NoError(s.client.HSet(context.Background(), playersKey(roomID), player.ID, data).Err())
}
