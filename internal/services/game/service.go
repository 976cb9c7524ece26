package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alimhan/buzzroom/internal/common/clock"
	"github.com/alimhan/buzzroom/internal/common/uuid"
	"github.com/alimhan/buzzroom/internal/models"
	"github.com/alimhan/buzzroom/internal/monitoring"
	questionRepo "github.com/alimhan/buzzroom/internal/repositories/question"
	roomRepo "github.com/alimhan/buzzroom/internal/repositories/room"
)

// Config holds the dependencies for the game service
type Config struct {
	RoomRepo     roomRepo.Repository
	QuestionRepo questionRepo.Repository
	Clock        clock.Clock
	UUID         uuid.UUID
	Logger       *slog.Logger
	Metrics      *monitoring.Metrics
}

// service implements the Service interface
type service struct {
	roomRepo     roomRepo.Repository
	questionRepo questionRepo.Repository
	clock        clock.Clock
	uuid         uuid.UUID
	log          *slog.Logger
	metrics      *monitoring.Metrics
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.QuestionRepo == nil {
		return nil, ErrNilQuestionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &service{
		roomRepo:     cfg.RoomRepo,
		questionRepo: cfg.QuestionRepo,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
		log:          log,
		metrics:      cfg.Metrics,
	}, nil
}

// CreateRoom creates a new room owned by the host. Creation is exclusive: an
// existing room with the same join credentials fails the call.
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || input.RoomNumber == "" || input.RoomPassword == "" {
		return nil, ErrInvalidInput
	}

	if input.Host == nil || input.Host.ID == "" {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()
	room := &models.Room{
		ID:                s.uuid.NewUUID(),
		RoomNumber:        input.RoomNumber,
		RoomPassword:      input.RoomPassword,
		Host:              input.Host,
		CurrentQuestionID: models.FirstQuestionID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	out, err := s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{Room: room})
	if err != nil {
		return nil, s.mapRoomErr(err)
	}

	s.metrics.RecordRoomEvent(monitoring.RoomCreated)
	s.log.Info("room created",
		slog.String("room_id", out.RoomID),
		slog.String("room_number", room.RoomNumber),
		slog.String("host_id", room.HostID()))

	return &CreateRoomOutput{RoomID: out.RoomID}, nil
}

// JoinRoom resolves the join credentials and merges the player into the
// room's roster. Re-joining with a known player ID is a reconnect: the player
// record is updated, not duplicated, and their score survives.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil || input.RoomNumber == "" || input.RoomPassword == "" {
		return nil, ErrInvalidInput
	}

	if input.Player == nil || input.Player.ID == "" {
		return nil, ErrInvalidInput
	}

	room, err := s.roomRepo.FindRoomByCredentials(ctx, &roomRepo.FindRoomByCredentialsInput{
		RoomNumber:   input.RoomNumber,
		RoomPassword: input.RoomPassword,
	})
	if err != nil {
		return nil, s.mapRoomErr(err)
	}

	player, err := s.roomRepo.UpsertPlayer(ctx, &roomRepo.UpsertPlayerInput{
		RoomID: room.ID,
		Player: input.Player,
	})
	if err != nil {
		return nil, s.mapRoomErr(err)
	}

	s.metrics.RecordRoomEvent(monitoring.RoomJoined)
	s.log.Info("player joined room",
		slog.String("room_id", room.ID),
		slog.String("player_id", player.ID))

	return &JoinRoomOutput{
		RoomID:   room.ID,
		PlayerID: player.ID,
	}, nil
}

// ExitRoom removes a player from the room. A host exit ends the game for
// everyone: the room and all player records are deleted as one batch.
func (s *service) ExitRoom(ctx context.Context, input *ExitRoomInput) (*ExitRoomOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, s.mapRoomErr(err)
	}

	if room.HostID() == input.PlayerID {
		if _, err := s.DeleteRoom(ctx, &DeleteRoomInput{RoomID: input.RoomID}); err != nil {
			return nil, err
		}
		s.log.Info("host exited, room deleted",
			slog.String("room_id", input.RoomID),
			slog.String("host_id", input.PlayerID))
		return &ExitRoomOutput{RoomDeleted: true}, nil
	}

	if err := s.roomRepo.DeletePlayer(ctx, &roomRepo.DeletePlayerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
	}); err != nil {
		return nil, s.mapRoomErr(err)
	}

	s.log.Info("player exited room",
		slog.String("room_id", input.RoomID),
		slog.String("player_id", input.PlayerID))

	return &ExitRoomOutput{RoomDeleted: false}, nil
}

// DeleteRoom removes the room and every player record under it
func (s *service) DeleteRoom(ctx context.Context, input *DeleteRoomInput) (*DeleteRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrInvalidInput
	}

	if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{RoomID: input.RoomID}); err != nil {
		return nil, s.mapRoomErr(err)
	}

	s.metrics.RecordRoomEvent(monitoring.RoomDeleted)
	s.log.Info("room deleted", slog.String("room_id", input.RoomID))

	return &DeleteRoomOutput{}, nil
}

// GetRoom retrieves a room and its roster
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrInvalidInput
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, s.mapRoomErr(err)
	}

	players, err := s.roomRepo.ListPlayers(ctx, &roomRepo.ListPlayersInput{RoomID: input.RoomID})
	if err != nil {
		return nil, s.mapRoomErr(err)
	}

	return &GetRoomOutput{
		Room:    room,
		Players: players,
	}, nil
}

// AdvanceQuestion moves the room to the question following the given one in
// catalog order, wrapping to the first question at the end. The buzzing
// window is left untouched; hosts settle the pending buzz separately.
func (s *service) AdvanceQuestion(ctx context.Context, input *AdvanceQuestionInput) (*AdvanceQuestionOutput, error) {
	if input == nil || input.RoomID == "" || input.CurrentQuestionID == "" {
		return nil, ErrInvalidInput
	}

	next, err := s.questionRepo.GetNextAfter(ctx, &questionRepo.GetNextAfterInput{
		QuestionID: input.CurrentQuestionID,
	})
	if err != nil {
		return nil, s.mapQuestionErr(err)
	}

	if err := s.roomRepo.SetCurrentQuestion(ctx, &roomRepo.SetCurrentQuestionInput{
		RoomID:     input.RoomID,
		QuestionID: next.ID,
	}); err != nil {
		return nil, s.mapRoomErr(err)
	}

	s.log.Info("question advanced",
		slog.String("room_id", input.RoomID),
		slog.String("question_id", next.ID))

	return &AdvanceQuestionOutput{QuestionID: next.ID}, nil
}

// ClaimFirstBuzzer arbitrates a buzz attempt. Exactly one claim succeeds per
// open window; every other concurrent attempt gets Accepted=false with no
// state change. Losing the race is a normal outcome, not an error.
func (s *service) ClaimFirstBuzzer(ctx context.Context, input *ClaimFirstBuzzerInput) (*ClaimFirstBuzzerOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.roomRepo.ClaimFirstBuzzer(ctx, &roomRepo.ClaimFirstBuzzerInput{
		RoomID:   input.RoomID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, s.mapRoomErr(err)
	}

	s.metrics.RecordClaim(out.Accepted)
	s.log.Info("buzzer claim",
		slog.String("room_id", input.RoomID),
		slog.String("player_id", input.PlayerID),
		slog.Bool("accepted", out.Accepted))

	return &ClaimFirstBuzzerOutput{
		Accepted:    out.Accepted,
		FirstBuzzer: out.FirstBuzzer,
	}, nil
}

// ResolveBuzz awards the question's points to the current first buzzer and
// clears the window. With no pending claim it is a safe no-op.
func (s *service) ResolveBuzz(ctx context.Context, input *ResolveBuzzInput) (*ResolveBuzzOutput, error) {
	if input == nil || input.RoomID == "" || input.QuestionID == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.settleBuzz(ctx, input.RoomID, input.QuestionID, false)
	if err != nil {
		return nil, err
	}

	return &ResolveBuzzOutput{
		Settled:  out.Settled,
		PlayerID: out.PlayerID,
		NewScore: out.NewScore,
	}, nil
}

// CancelBuzz deducts the question's points from the current first buzzer and
// clears the window. The score may go negative; that is the cost of an
// incorrect buzz. With no pending claim it is a safe no-op.
func (s *service) CancelBuzz(ctx context.Context, input *CancelBuzzInput) (*CancelBuzzOutput, error) {
	if input == nil || input.RoomID == "" || input.QuestionID == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.settleBuzz(ctx, input.RoomID, input.QuestionID, true)
	if err != nil {
		return nil, err
	}

	return &CancelBuzzOutput{
		Settled:  out.Settled,
		PlayerID: out.PlayerID,
		NewScore: out.NewScore,
	}, nil
}

// settleBuzz looks up the question's point value and applies the signed delta
// to the claimant atomically with the window clear
func (s *service) settleBuzz(ctx context.Context, roomID, questionID string, penalize bool) (*roomRepo.SettleBuzzOutput, error) {
	question, err := s.questionRepo.GetQuestion(ctx, &questionRepo.GetQuestionInput{
		QuestionID: questionID,
	})
	if err != nil {
		return nil, s.mapQuestionErr(err)
	}

	delta := question.Score
	direction := monitoring.DirectionAward
	if penalize {
		delta = -delta
		direction = monitoring.DirectionPenalty
	}

	out, err := s.roomRepo.SettleBuzz(ctx, &roomRepo.SettleBuzzInput{
		RoomID: roomID,
		Delta:  delta,
	})
	if err != nil {
		return nil, s.mapRoomErr(err)
	}

	if !out.Settled {
		s.log.Warn("no first buzzer to settle", slog.String("room_id", roomID))
		return out, nil
	}

	s.metrics.RecordSettlement(direction)
	s.log.Info("buzz settled",
		slog.String("room_id", roomID),
		slog.String("player_id", out.PlayerID),
		slog.String("question_id", questionID),
		slog.Int("delta", delta),
		slog.Int("new_score", out.NewScore))

	return out, nil
}

// CompileFinalScoreboard reads the roster in standings order, renders one
// "rank. name - score" line per player, stores the listing as a zero-point
// pseudo question and repoints the room's current question at it. Ranks
// increment per player; ties are ordered by player ID.
func (s *service) CompileFinalScoreboard(ctx context.Context, input *CompileFinalScoreboardInput) (*CompileFinalScoreboardOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID}); err != nil {
		return nil, s.mapRoomErr(err)
	}

	players, err := s.roomRepo.ListPlayers(ctx, &roomRepo.ListPlayersInput{RoomID: input.RoomID})
	if err != nil {
		return nil, s.mapRoomErr(err)
	}

	if len(players) == 0 {
		s.log.Warn("no players to rank", slog.String("room_id", input.RoomID))
		return &CompileFinalScoreboardOutput{}, nil
	}

	var b strings.Builder
	for rank, player := range players {
		fmt.Fprintf(&b, "%d. %s - %d\n", rank+1, player.Name, player.Score)
	}
	text := b.String()

	created, err := s.questionRepo.CreatePseudoQuestion(ctx, &questionRepo.CreatePseudoQuestionInput{
		Text:   text,
		Answer: "Final Scoreboard",
	})
	if err != nil {
		return nil, s.mapQuestionErr(err)
	}

	if err := s.roomRepo.SetCurrentQuestion(ctx, &roomRepo.SetCurrentQuestionInput{
		RoomID:     input.RoomID,
		QuestionID: created.QuestionID,
	}); err != nil {
		return nil, s.mapRoomErr(err)
	}

	s.log.Info("final scoreboard compiled",
		slog.String("room_id", input.RoomID),
		slog.String("question_id", created.QuestionID),
		slog.Int("players", len(players)))

	return &CompileFinalScoreboardOutput{
		QuestionID:  created.QuestionID,
		Text:        text,
		PlayerCount: len(players),
	}, nil
}

// mapRoomErr translates room repository errors into the service taxonomy.
// Anything that is not a known sentinel is a store failure.
func (s *service) mapRoomErr(err error) error {
	switch {
	case errors.Is(err, roomRepo.ErrRoomNotFound):
		return ErrRoomNotFound
	case errors.Is(err, roomRepo.ErrRoomExists):
		return ErrRoomExists
	case errors.Is(err, roomRepo.ErrPlayerNotFound):
		return ErrPlayerNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// mapQuestionErr translates question repository errors into the service
// taxonomy
func (s *service) mapQuestionErr(err error) error {
	switch {
	case errors.Is(err, questionRepo.ErrQuestionNotFound),
		errors.Is(err, questionRepo.ErrCatalogEmpty):
		return ErrQuestionNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
