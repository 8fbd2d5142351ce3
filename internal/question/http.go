package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	httperrors "github.com/triviahub/question-bank/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints of the question bank.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for question and quiz endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// ListCategories handles GET /categories
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoCategories) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "no categories found")
			return
		}
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w, "could not list categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		if errors.Is(err, ErrNoQuestions) || errors.Is(err, ErrNoCategories) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "no questions found")
			return
		}
		h.logger.Error().Err(err).Msg("list questions failed")
		httperrors.RespondInternalError(w, "could not list questions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"totalQuestions":  result.TotalQuestions,
		"currentCategory": nil,
		"categories":      result.Categories,
	})
}

// CreateQuestion handles POST /questions
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Category   int64  `json:"category"`
		Difficulty int    `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	_, err := h.svc.Create(r.Context(), NewQuestion{
		Text:       req.Question,
		Answer:     req.Answer,
		CategoryID: req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidQuestion) {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("create question failed")
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, "question could not be created")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, "question id must be an integer")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "question not found")
			return
		}
		h.logger.Error().Err(err).Int64("question_id", id).Msg("delete question failed")
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, "question could not be deleted")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deletedQuestion": id,
	})
}

// SearchQuestions handles POST /questions/search?page=N
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SearchTerm string `json:"searchTerm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	result, err := h.svc.Search(r.Context(), req.SearchTerm, pageParam(r))
	if err != nil {
		if errors.Is(err, ErrEmptySearchTerm) {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("search questions failed")
		httperrors.RespondInternalError(w, "could not search questions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"totalQuestions":  result.TotalQuestions,
		"currentCategory": result.CurrentCategories,
	})
}

// ListByCategory handles GET /categories/{id}/questions?page=N
func (h *HTTPHandlers) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, "category id must be an integer")
		return
	}

	result, err := h.svc.ListByCategory(r.Context(), categoryID, pageParam(r))
	if err != nil {
		h.logger.Error().Err(err).Int64("category_id", categoryID).Msg("list by category failed")
		httperrors.RespondInternalError(w, "could not list questions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"totalQuestions":  result.TotalQuestions,
		"currentCategory": result.CategoryID,
	})
}

// DrawQuizQuestion handles POST /quizzes
func (h *HTTPHandlers) DrawQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PreviousQuestions *[]int64 `json:"previousQuestions"`
		QuizCategory      *struct {
			ID *int64 `json:"id"`
		} `json:"quizCategory"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if req.PreviousQuestions == nil || req.QuizCategory == nil || req.QuizCategory.ID == nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, "previousQuestions and quizCategory.id are required")
		return
	}

	picked, err := h.svc.Draw(r.Context(), *req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Msg("quiz draw failed")
		httperrors.RespondInternalError(w, "could not draw a question")
		return
	}

	// picked is nil once the pool is exhausted; the client reads a null
	// question as quiz completion.
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": picked,
	})
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// pageParam reads ?page= and falls back to the first page on anything
// absent, non-numeric or below one.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
