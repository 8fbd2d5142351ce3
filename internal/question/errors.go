package question

import "errors"

var (
	// ErrQuestionNotFound signals a lookup or delete against an unknown id.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrNoQuestions signals an empty question bank on a listing call.
	ErrNoQuestions = errors.New("no questions available")

	// ErrNoCategories signals an empty category table. The service cannot
	// run without seeded categories, so this is a fault, not a valid answer.
	ErrNoCategories = errors.New("no categories configured")

	// ErrEmptySearchTerm is returned before the store is touched.
	ErrEmptySearchTerm = errors.New("search term must not be empty")

	// ErrInvalidQuestion rejects inserts with an empty prompt or answer.
	ErrInvalidQuestion = errors.New("question and answer text must not be empty")
)
