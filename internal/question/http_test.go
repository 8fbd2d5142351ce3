package question

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store *memoryStore) http.Handler {
	svc := NewService(store, store, ServiceOptions{Rand: rand.New(rand.NewSource(42))})
	handlers := NewHTTPHandlers(svc, zerolog.New(io.Discard))

	r := chi.NewRouter()
	r.Get("/categories", handlers.ListCategories)
	r.Get("/categories/{id}/questions", handlers.ListByCategory)
	r.Get("/questions", handlers.ListQuestions)
	r.Post("/questions", handlers.CreateQuestion)
	r.Delete("/questions/{id}", handlers.DeleteQuestion)
	r.Post("/questions/search", handlers.SearchQuestions)
	r.Post("/quizzes", handlers.DrawQuizQuestion)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	payload := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestListCategoriesEndpoint(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodGet, "/categories", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, map[string]interface{}{"1": "Science", "2": "Art", "3": "Geography"}, payload["categories"])
}

func TestListCategoriesEmptyStoreIsNotFound(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	rec, payload := doRequest(t, router, http.MethodGet, "/categories", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "not_found", payload["error"])
}

func TestListQuestionsEnvelope(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	for i := 0; i < 15; i++ {
		store.add("Question?", "Answer", 1, 2)
	}
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodGet, "/questions?page=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(15), payload["totalQuestions"])
	assert.Len(t, payload["questions"], 5)

	// currentCategory is present and null on the full listing.
	current, present := payload["currentCategory"]
	assert.True(t, present)
	assert.Nil(t, current)
}

func TestListQuestionsNonNumericPageDefaultsToFirst(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	for i := 0; i < 12; i++ {
		store.add("Question?", "Answer", 1, 1)
	}
	router := newTestRouter(store)

	_, payload := doRequest(t, router, http.MethodGet, "/questions?page=abc", "")

	assert.Len(t, payload["questions"], 10)
}

func TestCreateQuestionMissingAnswerIsBadRequest(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodPost, "/questions",
		`{"question":"Who discovered penicillin?","answer":"","category":1,"difficulty":3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "validation_failed", payload["error"])
	assert.Equal(t, 0, store.count())
}

func TestCreateQuestionSucceeds(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodPost, "/questions",
		`{"question":"Who discovered penicillin?","answer":"Alexander Fleming","category":1,"difficulty":3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, 1, store.count())
}

func TestDeleteQuestionReturnsDeletedID(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	q := store.add("Question?", "Answer", 1, 1)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodDelete, "/questions/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(q.ID), payload["deletedQuestion"])
	assert.Equal(t, 0, store.count())
}

func TestDeleteUnknownQuestionIsNotFound(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	store.add("Question?", "Answer", 1, 1)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodDelete, "/questions/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", payload["error"])
	assert.Equal(t, 1, store.count())
}

func TestSearchEmptyTermIsBadRequest(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	store.add("Question?", "Answer", 1, 1)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodPost, "/questions/search", `{"searchTerm":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_failed", payload["error"])
}

func TestSearchFindsSubstringMatches(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	capital := store.add("What is the capital of Title-land?", "Titleville", 1, 1)
	store.add("2+2=?", "4", 2, 1)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodPost, "/questions/search", `{"searchTerm":"title"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), payload["totalQuestions"])

	questions, ok := payload["questions"].([]interface{})
	require.True(t, ok)
	require.Len(t, questions, 1)
	match := questions[0].(map[string]interface{})
	assert.Equal(t, float64(capital.ID), match["id"])

	// currentCategory is a list here, one entry per unpaged match.
	assert.Equal(t, []interface{}{float64(1)}, payload["currentCategory"])
}

func TestListByCategoryEndpoint(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	store.add("What is the capital of Title-land?", "Titleville", 1, 1)
	arithmetic := store.add("2+2=?", "4", 2, 1)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodGet, "/categories/2/questions", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(1), payload["totalQuestions"])
	assert.Equal(t, float64(2), payload["currentCategory"])

	questions := payload["questions"].([]interface{})
	require.Len(t, questions, 1)
	assert.Equal(t, float64(arithmetic.ID), questions[0].(map[string]interface{})["id"])
}

func TestListByCategoryUnknownIDSucceeds(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	store.add("Question?", "Answer", 1, 1)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodGet, "/categories/999/questions", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(0), payload["totalQuestions"])
}

func TestQuizDrawMissingFieldsIsBadRequest(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	store.add("Question?", "Answer", 1, 1)
	router := newTestRouter(store)

	for _, body := range []string{
		`{}`,
		`{"previousQuestions":[]}`,
		`{"quizCategory":{"id":0}}`,
		`{"previousQuestions":[],"quizCategory":{}}`,
	} {
		rec, payload := doRequest(t, router, http.MethodPost, "/quizzes", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.Equal(t, "validation_failed", payload["error"], "body: %s", body)
	}
}

func TestQuizDrawSkipsPreviousQuestions(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	store.add("What is the capital of Title-land?", "Titleville", 1, 1)
	remaining := store.add("2+2=?", "4", 2, 1)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodPost, "/quizzes",
		`{"previousQuestions":[1],"quizCategory":{"id":0}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])

	picked, ok := payload["question"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(remaining.ID), picked["id"])
}

func TestQuizDrawExhaustedPoolReturnsNullQuestion(t *testing.T) {
	store := newMemoryStore(defaultCategories()...)
	store.add("Question?", "Answer", 1, 1)
	router := newTestRouter(store)

	rec, payload := doRequest(t, router, http.MethodPost, "/quizzes",
		`{"previousQuestions":[1],"quizCategory":{"id":0}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])

	picked, present := payload["question"]
	assert.True(t, present)
	assert.Nil(t, picked)
}
