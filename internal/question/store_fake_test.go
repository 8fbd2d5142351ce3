package question

import (
	"context"
	"strings"
	"sync"
)

// memoryStore implements Store and CategoryStore for tests, mirroring the
// contract of the Postgres repositories: id-ordered listings, monotonically
// assigned ids, not-found delete.
type memoryStore struct {
	mu         sync.Mutex
	nextID     int64
	questions  []Question
	categories []Category

	failWith error // when set, every call returns it
}

func newMemoryStore(categories ...Category) *memoryStore {
	return &memoryStore{categories: categories}
}

func (m *memoryStore) add(text, answer string, categoryID int64, difficulty int) Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	q := Question{ID: m.nextID, Text: text, Answer: answer, CategoryID: categoryID, Difficulty: difficulty}
	m.questions = append(m.questions, q)
	return q
}

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.questions)
}

func (m *memoryStore) ListQuestions(ctx context.Context) ([]Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]Question(nil), m.questions...), nil
}

func (m *memoryStore) GetQuestion(ctx context.Context, id int64) (Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return Question{}, m.failWith
	}
	for _, q := range m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, ErrQuestionNotFound
}

func (m *memoryStore) ListByCategory(ctx context.Context, categoryID int64) ([]Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []Question
	for _, q := range m.questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memoryStore) Search(ctx context.Context, term string) ([]Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	needle := strings.ToLower(term)
	var out []Question
	for _, q := range m.questions {
		if strings.Contains(strings.ToLower(q.Text), needle) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memoryStore) Insert(ctx context.Context, nq NewQuestion) (Question, error) {
	if m.failWith != nil {
		return Question{}, m.failWith
	}
	return m.add(nq.Text, nq.Answer, nq.CategoryID, nq.Difficulty), nil
}

func (m *memoryStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for i, q := range m.questions {
		if q.ID == id {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return nil
		}
	}
	return ErrQuestionNotFound
}

func (m *memoryStore) ListCategories(ctx context.Context) ([]Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]Category(nil), m.categories...), nil
}

func defaultCategories() []Category {
	return []Category{
		{ID: 1, Label: "Science"},
		{ID: 2, Label: "Art"},
		{ID: 3, Label: "Geography"},
	}
}
