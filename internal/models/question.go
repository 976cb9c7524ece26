package models

// Question represents one entry in the ordered question catalog
type Question struct {
	// ID is the unique identifier for the question
	ID string

	// Text is the question body shown to players
	Text string

	// Answer is the expected answer, judged by the host
	Answer string

	// Score is the point value awarded or deducted when a buzz is settled
	Score int
}
