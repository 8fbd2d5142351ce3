package question

import (
	"context"
	"fmt"
	"strings"
)

// Store is the persistence contract for questions. Implementations must
// keep listing order stable (primary-key order) and make each mutating call
// atomic: either the record is fully persisted or removed, or state is
// unchanged and an error is returned.
type Store interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	GetQuestion(ctx context.Context, id int64) (Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	Insert(ctx context.Context, q NewQuestion) (Question, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryStore is the persistence contract for categories.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]Category, error)
}

// Service composes store reads with filtering, search, pagination and the
// quiz draw. It holds no state of its own beyond its collaborators; every
// call re-reads the store, so concurrent mutations are picked up on the
// next request.
type Service struct {
	store      Store
	categories CategoryStore
	rng        Rand
}

// ServiceOptions carries optional collaborators.
type ServiceOptions struct {
	// Rand is the random source for quiz draws. Defaults to the
	// process-wide math/rand source; tests inject a seeded one.
	Rand Rand
}

func NewService(store Store, categories CategoryStore, opts ServiceOptions) *Service {
	rng := opts.Rand
	if rng == nil {
		rng = processRand{}
	}
	return &Service{
		store:      store,
		categories: categories,
		rng:        rng,
	}
}

// ListCategories returns every category as an id -> label map. An empty
// category table means the seed migration never ran, so it is surfaced as
// ErrNoCategories rather than an empty map.
func (s *Service) ListCategories(ctx context.Context) (CategoryMap, error) {
	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(cats) == 0 {
		return nil, ErrNoCategories
	}
	m := make(CategoryMap, len(cats))
	for _, c := range cats {
		m[c.ID] = c.Label
	}
	return m, nil
}

// ListQuestions returns one page of the full question bank together with
// the category map. TotalQuestions counts the bank before slicing.
func (s *Service) ListQuestions(ctx context.Context, page int) (ListResult, error) {
	all, err := s.store.ListQuestions(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("list questions: %w", err)
	}
	if len(all) == 0 {
		return ListResult{}, ErrNoQuestions
	}

	cats, err := s.ListCategories(ctx)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Questions:      paginate(formatQuestions(all), page),
		TotalQuestions: len(all),
		Categories:     cats,
	}, nil
}

// Search returns one page of the questions whose text contains term,
// case-insensitively. The term must be non-empty; that is checked here so
// a blank search never reaches the store.
func (s *Service) Search(ctx context.Context, term string, page int) (SearchResult, error) {
	if strings.TrimSpace(term) == "" {
		return SearchResult{}, ErrEmptySearchTerm
	}

	matches, err := s.store.Search(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search questions: %w", err)
	}

	categories := make([]int64, 0, len(matches))
	for _, q := range matches {
		categories = append(categories, q.CategoryID)
	}

	return SearchResult{
		Questions:         paginate(formatQuestions(matches), page),
		TotalQuestions:    len(matches),
		CurrentCategories: categories,
	}, nil
}

// ListByCategory returns one page of the questions in a category. The
// category id is not checked against the category table; an unknown id
// yields zero matches and still succeeds.
func (s *Service) ListByCategory(ctx context.Context, categoryID int64, page int) (CategoryResult, error) {
	matches, err := s.store.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryResult{}, fmt.Errorf("list by category: %w", err)
	}

	pageItems := paginate(formatQuestions(matches), page)
	return CategoryResult{
		Questions:      pageItems,
		TotalQuestions: len(pageItems),
		CategoryID:     categoryID,
	}, nil
}

// Create validates and inserts a question. An empty prompt or answer is
// rejected before the store is touched; the bank is unchanged on failure.
func (s *Service) Create(ctx context.Context, q NewQuestion) (Question, error) {
	if strings.TrimSpace(q.Text) == "" || strings.TrimSpace(q.Answer) == "" {
		return Question{}, ErrInvalidQuestion
	}

	created, err := s.store.Insert(ctx, q)
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}
	return created, nil
}

// Delete removes a question by id. The record is looked up first, so an
// unknown id is reported as not-found without touching the bank.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.GetQuestion(ctx, id); err != nil {
		return fmt.Errorf("look up question %d: %w", id, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}
