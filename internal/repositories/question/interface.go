package question

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/alimhan/buzzroom/internal/repositories/question Repository

import (
	"context"

	"github.com/alimhan/buzzroom/internal/models"
)

// Repository defines the interface for the ordered question catalog
type Repository interface {
	// GetQuestion retrieves a question by ID
	GetQuestion(ctx context.Context, input *GetQuestionInput) (*models.Question, error)

	// GetNextAfter retrieves the question following the given one in catalog
	// order, wrapping to the first question at the end of the catalog
	GetNextAfter(ctx context.Context, input *GetNextAfterInput) (*models.Question, error)

	// SaveQuestion appends or overwrites a question in the catalog
	SaveQuestion(ctx context.Context, input *SaveQuestionInput) error

	// CreatePseudoQuestion appends a question-shaped record (e.g. the final
	// scoreboard) at the end of the catalog and returns its ID
	CreatePseudoQuestion(ctx context.Context, input *CreatePseudoQuestionInput) (*CreatePseudoQuestionOutput, error)

	// CatalogSize returns the number of questions in the catalog
	CatalogSize(ctx context.Context) (int64, error)
}
