package question

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/alimhan/buzzroom/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
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

func (s *RedisRepositoryTestSuite) seedCatalog() {
	ctx := context.Background()
	for _, q := range []*models.Question{
		{ID: "1", Text: "First question", Answer: "A", Score: 10},
		{ID: "2", Text: "Second question", Answer: "B", Score: 20},
		{ID: "3", Text: "Third question", Answer: "C", Score: 30},
	} {
		s.Require().NoError(s.repo.SaveQuestion(ctx, &SaveQuestionInput{Question: q}))
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetQuestion() {
	ctx := context.Background()
	s.seedCatalog()

	question, err := s.repo.GetQuestion(ctx, &GetQuestionInput{QuestionID: "2"})
	s.Require().NoError(err)
	s.Equal("2", question.ID)
	s.Equal("Second question", question.Text)
	s.Equal("B", question.Answer)
	s.Equal(20, question.Score)
}

func (s *RedisRepositoryTestSuite) TestGetQuestionNotFound() {
	_, err := s.repo.GetQuestion(context.Background(), &GetQuestionInput{QuestionID: "99"})
	s.Require().ErrorIs(err, ErrQuestionNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetNextAfterFollowsCatalogOrder() {
	ctx := context.Background()
	s.seedCatalog()

	next, err := s.repo.GetNextAfter(ctx, &GetNextAfterInput{QuestionID: "1"})
	s.Require().NoError(err)
	s.Equal("2", next.ID)

	next, err = s.repo.GetNextAfter(ctx, &GetNextAfterInput{QuestionID: "2"})
	s.Require().NoError(err)
	s.Equal("3", next.ID)
}

func (s *RedisRepositoryTestSuite) TestGetNextAfterWrapsAtEnd() {
	ctx := context.Background()
	s.seedCatalog()

	next, err := s.repo.GetNextAfter(ctx, &GetNextAfterInput{QuestionID: "3"})
	s.Require().NoError(err)
	s.Equal("1", next.ID)
}

func (s *RedisRepositoryTestSuite) TestGetNextAfterUnknownIDWrapsToFirst() {
	ctx := context.Background()
	s.seedCatalog()

	next, err := s.repo.GetNextAfter(ctx, &GetNextAfterInput{QuestionID: "never-existed"})
	s.Require().NoError(err)
	s.Equal("1", next.ID)
}

func (s *RedisRepositoryTestSuite) TestGetNextAfterEmptyCatalog() {
	_, err := s.repo.GetNextAfter(context.Background(), &GetNextAfterInput{QuestionID: "1"})
	s.Require().ErrorIs(err, ErrCatalogEmpty)
}

func (s *RedisRepositoryTestSuite) TestSaveQuestionKeepsPositionOnOverwrite() {
	ctx := context.Background()
	s.seedCatalog()

	err := s.repo.SaveQuestion(ctx, &SaveQuestionInput{
		Question: &models.Question{ID: "2", Text: "Second, revised", Answer: "B", Score: 25},
	})
	s.Require().NoError(err)

	next, err := s.repo.GetNextAfter(ctx, &GetNextAfterInput{QuestionID: "1"})
	s.Require().NoError(err)
	s.Equal("2", next.ID)
	s.Equal("Second, revised", next.Text)
	s.Equal(25, next.Score)
}

func (s *RedisRepositoryTestSuite) TestCreatePseudoQuestionAppendsAtEnd() {
	ctx := context.Background()
	s.seedCatalog()

	out, err := s.repo.CreatePseudoQuestion(ctx, &CreatePseudoQuestionInput{
		Text:   "1. Alice - 30\n2. Bob - 10\n",
		Answer: "Final Scoreboard",
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.QuestionID)

	question, err := s.repo.GetQuestion(ctx, &GetQuestionInput{QuestionID: out.QuestionID})
	s.Require().NoError(err)
	s.Equal(0, question.Score)
	s.Equal("Final Scoreboard", question.Answer)

	// It follows the last real question in catalog order
	next, err := s.repo.GetNextAfter(ctx, &GetNextAfterInput{QuestionID: "3"})
	s.Require().NoError(err)
	s.Equal(out.QuestionID, next.ID)

	// And the catalog wraps past it back to the first question
	next, err = s.repo.GetNextAfter(ctx, &GetNextAfterInput{QuestionID: out.QuestionID})
	s.Require().NoError(err)
	s.Equal("1", next.ID)
}

func (s *RedisRepositoryTestSuite) TestCatalogSize() {
	ctx := context.Background()

	size, err := s.repo.CatalogSize(ctx)
	s.Require().NoError(err)
	s.Zero(size)

	s.seedCatalog()

	size, err = s.repo.CatalogSize(ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), size)
}
