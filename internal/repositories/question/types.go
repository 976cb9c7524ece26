package question

import "github.com/alimhan/buzzroom/internal/models"

type GetQuestionInput struct {
	QuestionID string
}

type GetNextAfterInput struct {
	QuestionID string
}

type SaveQuestionInput struct {
	Question *models.Question
}

type CreatePseudoQuestionInput struct {
	// Text is the body of the pseudo question
	Text string

	// Answer labels the record, e.g. "Final Scoreboard"
	Answer string
}

type CreatePseudoQuestionOutput struct {
	QuestionID string
}
