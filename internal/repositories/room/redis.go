package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/alimhan/buzzroom/internal/common/clock"
	"github.com/alimhan/buzzroom/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix    = "room:"
	playersKeyPrefix = "room_players:"
	lookupKeyPrefix  = "room_lookup:"

	// maxTxRetries bounds the optimistic-transaction retry loop. A WATCH
	// conflict means another claim or settle touched the room; the loop
	// re-reads and retries rather than failing the caller immediately.
	maxTxRetries = 5
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomExists is returned when creating a room whose identity or join
// credentials are already taken
var ErrRoomExists = errors.New("room already exists")

// ErrPlayerNotFound is returned when a player is not in the room's roster
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps UpdatedAt on room mutations; defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  clk,
	}, nil
}

func roomKey(roomID string) string {
	return roomKeyPrefix + roomID
}

func playersKey(roomID string) string {
	return playersKeyPrefix + roomID
}

func lookupKey(number, password string) string {
	return fmt.Sprintf("%s%s:%s", lookupKeyPrefix, number, password)
}

// createRoomScript writes the join-credentials index and the room document as
// one atomic unit, so a conflict or a crash can never leave either key
// dangling on its own.
var createRoomScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1])
redis.call("SET", KEYS[2], ARGV[2])
return 1
`)

// CreateRoom persists a new room. Creation is exclusive on both the room ID
// and the join credentials, and writes both keys atomically.
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || input.Room == nil {
		return nil, errors.New("input and room cannot be nil")
	}

	room := input.Room
	if room.ID == "" {
		return nil, errors.New("room ID cannot be empty")
	}

	roomJSON, err := json.Marshal(room)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal room: %w", err)
	}

	keys := []string{
		lookupKey(room.RoomNumber, room.RoomPassword),
		roomKey(room.ID),
	}
	created, err := createRoomScript.Run(ctx, r.client, keys, room.ID, roomJSON).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	if created == 0 {
		return nil, ErrRoomExists
	}

	return &CreateRoomOutput{RoomID: room.ID}, nil
}

// GetRoom retrieves a room by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomJSON, err := r.client.Get(ctx, roomKey(input.RoomID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// FindRoomByCredentials resolves the join index and loads the room
func (r *redisRepository) FindRoomByCredentials(ctx context.Context, input *FindRoomByCredentialsInput) (*models.Room, error) {
	if input == nil || input.RoomNumber == "" || input.RoomPassword == "" {
		return nil, errors.New("input, room number and password cannot be empty")
	}

	roomID, err := r.client.Get(ctx, lookupKey(input.RoomNumber, input.RoomPassword)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to look up room credentials: %w", err)
	}

	return r.GetRoom(ctx, &GetRoomInput{RoomID: roomID})
}

// DeleteRoom removes the room document, the roster hash and the join index in
// a single pipeline so no partial deletion is observable.
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	// Get the room first for its credentials index key
	room, err := r.GetRoom(ctx, &GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, roomKey(input.RoomID))
	pipe.Del(ctx, playersKey(input.RoomID))
	pipe.Del(ctx, lookupKey(room.RoomNumber, room.RoomPassword))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// UpsertPlayer merges a player into the roster. An existing player keeps their
// score; name and avatar are taken from the incoming record. The write runs
// under WATCH on the room document, so a join racing a room deletion cannot
// recreate the roster as an orphan.
func (r *redisRepository) UpsertPlayer(ctx context.Context, input *UpsertPlayerInput) (*models.Player, error) {
	if input == nil || input.Player == nil {
		return nil, errors.New("input and player cannot be nil")
	}

	if input.RoomID == "" || input.Player.ID == "" {
		return nil, errors.New("room ID and player ID cannot be empty")
	}

	rKey := roomKey(input.RoomID)
	pKey := playersKey(input.RoomID)
	var player models.Player

	txf := func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, rKey).Result()
		if err != nil {
			return fmt.Errorf("failed to check room: %w", err)
		}
		if exists == 0 {
			return ErrRoomNotFound
		}

		player = *input.Player

		existingJSON, err := tx.HGet(ctx, pKey, player.ID).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get player: %w", err)
		}
		if err == nil {
			var existing models.Player
			if err := json.Unmarshal([]byte(existingJSON), &existing); err != nil {
				return fmt.Errorf("failed to unmarshal player: %w", err)
			}
			// Reconnects must not reset a player's score
			player.Score = existing.Score
		}

		playerJSON, err := json.Marshal(&player)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, pKey, player.ID, playerJSON)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, rKey)
		if err == nil {
			return &player, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("join transaction conflicted %d times", maxTxRetries)
}

// DeletePlayer removes a single player from the roster
func (r *redisRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return errors.New("input, room ID and player ID cannot be empty")
	}

	if err := r.client.HDel(ctx, playersKey(input.RoomID), input.PlayerID).Err(); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return nil
}

// ListPlayers returns the roster ordered by score descending with player ID
// ascending as the tiebreak, so standings are deterministic.
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) ([]*models.Player, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	entries, err := r.client.HGetAll(ctx, playersKey(input.RoomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	players := make([]*models.Player, 0, len(entries))
	for playerID, playerJSON := range entries {
		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerID, err)
		}
		players = append(players, &player)
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		return players[i].ID < players[j].ID
	})

	return players, nil
}

// ClaimFirstBuzzer takes the first-buzzer slot with a WATCH/MULTI/EXEC
// compare-and-set on the room document. Two concurrent claims against a clear
// slot cannot both succeed: the loser's EXEC aborts and the retry observes the
// slot taken. Losing is reported as Accepted=false, never as an error.
func (r *redisRepository) ClaimFirstBuzzer(ctx context.Context, input *ClaimFirstBuzzerInput) (*ClaimFirstBuzzerOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	key := roomKey(input.RoomID)
	var out *ClaimFirstBuzzerOutput

	txf := func(tx *redis.Tx) error {
		roomJSON, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		var room models.Room
		if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}

		if room.FirstBuzzer != "" {
			out = &ClaimFirstBuzzerOutput{
				Accepted:    false,
				FirstBuzzer: room.FirstBuzzer,
			}
			return nil
		}

		room.FirstBuzzer = input.PlayerID
		room.BuzzingOpen = true
		room.UpdatedAt = r.clock.Now()

		updatedJSON, err := json.Marshal(&room)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updatedJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		out = &ClaimFirstBuzzerOutput{
			Accepted:    true,
			FirstBuzzer: input.PlayerID,
		}
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("claim transaction conflicted %d times", maxTxRetries)
}

// SettleBuzz applies a signed score delta to the current first buzzer and
// clears the buzzing window as one transaction over the room document and the
// roster hash. A retry after a conflict re-reads state, so the delta can never
// be applied twice. With the window already clear it is a no-op.
func (r *redisRepository) SettleBuzz(ctx context.Context, input *SettleBuzzInput) (*SettleBuzzOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	rKey := roomKey(input.RoomID)
	pKey := playersKey(input.RoomID)
	var out *SettleBuzzOutput

	txf := func(tx *redis.Tx) error {
		roomJSON, err := tx.Get(ctx, rKey).Result()
		if err == redis.Nil {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		var room models.Room
		if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}

		if room.FirstBuzzer == "" {
			out = &SettleBuzzOutput{Settled: false}
			return nil
		}

		playerJSON, err := tx.HGet(ctx, pKey, room.FirstBuzzer).Result()
		if err == redis.Nil {
			return ErrPlayerNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get player: %w", err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return fmt.Errorf("failed to unmarshal player: %w", err)
		}

		player.Score += input.Delta

		room.FirstBuzzer = ""
		room.BuzzingOpen = false
		room.UpdatedAt = r.clock.Now()

		updatedRoom, err := json.Marshal(&room)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		updatedPlayer, err := json.Marshal(&player)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, pKey, player.ID, updatedPlayer)
			pipe.Set(ctx, rKey, updatedRoom, 0)
			return nil
		})
		if err != nil {
			return err
		}

		out = &SettleBuzzOutput{
			Settled:  true,
			PlayerID: player.ID,
			NewScore: player.Score,
		}
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, rKey, pKey)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("settle transaction conflicted %d times", maxTxRetries)
}

// SetCurrentQuestion repoints the room's current question. The update runs
// under WATCH so it cannot clobber a concurrent claim or settle of the same
// room document.
func (r *redisRepository) SetCurrentQuestion(ctx context.Context, input *SetCurrentQuestionInput) error {
	if input == nil || input.RoomID == "" || input.QuestionID == "" {
		return errors.New("input, room ID and question ID cannot be empty")
	}

	key := roomKey(input.RoomID)

	txf := func(tx *redis.Tx) error {
		roomJSON, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		var room models.Room
		if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}

		room.CurrentQuestionID = input.QuestionID
		room.UpdatedAt = r.clock.Now()

		updatedJSON, err := json.Marshal(&room)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updatedJSON, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return fmt.Errorf("question update conflicted %d times", maxTxRetries)
}
