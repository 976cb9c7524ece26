package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/alimhan/buzzroom/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	questionKeyPrefix = "question:"

	// orderIndexKey is a sorted set mapping question ID to its position in
	// catalog order
	orderIndexKey = "questions:order"
)

// ErrQuestionNotFound is returned when a question is not found
var ErrQuestionNotFound = errors.New("question not found")

// ErrCatalogEmpty is returned when the catalog has no questions at all
var ErrCatalogEmpty = errors.New("question catalog is empty")

// Config holds configuration for the Redis question repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed question repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func questionKey(questionID string) string {
	return questionKeyPrefix + questionID
}

// GetQuestion retrieves a question by ID from Redis
func (r *redisRepository) GetQuestion(ctx context.Context, input *GetQuestionInput) (*models.Question, error) {
	if input == nil || input.QuestionID == "" {
		return nil, errors.New("input and question ID cannot be empty")
	}

	questionJSON, err := r.client.Get(ctx, questionKey(input.QuestionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	var question models.Question
	if err := json.Unmarshal([]byte(questionJSON), &question); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question: %w", err)
	}

	return &question, nil
}

// GetNextAfter returns the question following the given one in catalog order.
// At the end of the catalog, and for an ID no longer in the index, it wraps to
// the first question.
func (r *redisRepository) GetNextAfter(ctx context.Context, input *GetNextAfterInput) (*models.Question, error) {
	if input == nil || input.QuestionID == "" {
		return nil, errors.New("input and question ID cannot be empty")
	}

	seq, err := r.client.ZScore(ctx, orderIndexKey, input.QuestionID).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get question order: %w", err)
	}

	var nextID string
	if err == nil {
		ids, err := r.client.ZRangeByScore(ctx, orderIndexKey, &redis.ZRangeBy{
			Min:    "(" + strconv.FormatFloat(seq, 'f', -1, 64),
			Max:    "+inf",
			Offset: 0,
			Count:  1,
		}).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get next question: %w", err)
		}
		if len(ids) > 0 {
			nextID = ids[0]
		}
	}

	if nextID == "" {
		// End of catalog, or the current ID was removed: wrap to the first
		ids, err := r.client.ZRange(ctx, orderIndexKey, 0, 0).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get first question: %w", err)
		}
		if len(ids) == 0 {
			return nil, ErrCatalogEmpty
		}
		nextID = ids[0]
	}

	return r.GetQuestion(ctx, &GetQuestionInput{QuestionID: nextID})
}

// SaveQuestion writes the question document and, for a new question, appends
// it to the order index. Overwriting an existing question keeps its position.
func (r *redisRepository) SaveQuestion(ctx context.Context, input *SaveQuestionInput) error {
	if input == nil || input.Question == nil {
		return errors.New("input and question cannot be nil")
	}

	question := input.Question
	if question.ID == "" {
		return errors.New("question ID cannot be empty")
	}

	questionJSON, err := json.Marshal(question)
	if err != nil {
		return fmt.Errorf("failed to marshal question: %w", err)
	}

	seq, err := r.nextSequence(ctx, question.ID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, questionKey(question.ID), questionJSON, 0)
	pipe.ZAddNX(ctx, orderIndexKey, redis.Z{Score: seq, Member: question.ID})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	return nil
}

// CreatePseudoQuestion appends a zero-point question-shaped record at the end
// of the catalog and returns its generated ID
func (r *redisRepository) CreatePseudoQuestion(ctx context.Context, input *CreatePseudoQuestionInput) (*CreatePseudoQuestionOutput, error) {
	if input == nil || input.Text == "" {
		return nil, errors.New("input and text cannot be empty")
	}

	question := &models.Question{
		ID:     uuid.New().String(),
		Text:   input.Text,
		Answer: input.Answer,
		Score:  0,
	}

	if err := r.SaveQuestion(ctx, &SaveQuestionInput{Question: question}); err != nil {
		return nil, err
	}

	return &CreatePseudoQuestionOutput{QuestionID: question.ID}, nil
}

// CatalogSize returns the number of questions in the catalog
func (r *redisRepository) CatalogSize(ctx context.Context) (int64, error) {
	size, err := r.client.ZCard(ctx, orderIndexKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get catalog size: %w", err)
	}
	return size, nil
}

// nextSequence returns the order score for a question: its existing position
// when already indexed, otherwise one past the current maximum.
func (r *redisRepository) nextSequence(ctx context.Context, questionID string) (float64, error) {
	existing, err := r.client.ZScore(ctx, orderIndexKey, questionID).Result()
	if err == nil {
		return existing, nil
	}
	if err != redis.Nil {
		return 0, fmt.Errorf("failed to get question order: %w", err)
	}

	last, err := r.client.ZRevRangeWithScores(ctx, orderIndexKey, 0, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get catalog tail: %w", err)
	}
	if len(last) == 0 {
		return 1, nil
	}
	return last[0].Score + 1, nil
}
