package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/triviahub/question-bank/internal/question"
)

const questionColumns = "question_id, question_text, answer_text, category_id, difficulty"

// QuestionRepository is the Postgres-backed question store. Listings are
// ordered by primary key so pagination stays stable across calls absent
// mutation.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) ListQuestions(ctx context.Context) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions ORDER BY question_id")
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *QuestionRepository) GetQuestion(ctx context.Context, id int64) (question.Question, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question_id = $1", id)

	var q question.Question
	if err := row.Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return question.Question{}, question.ErrQuestionNotFound
		}
		return question.Question{}, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category_id = $1 ORDER BY question_id",
		categoryID)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// Search matches term as a case-insensitive substring of the question text.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question_text ILIKE '%' || $1 || '%' ORDER BY question_id",
		term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *QuestionRepository) Insert(ctx context.Context, nq question.NewQuestion) (question.Question, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO questions (question_text, answer_text, category_id, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+questionColumns,
		nq.Text, nq.Answer, nq.CategoryID, nq.Difficulty)

	var q question.Question
	if err := row.Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty); err != nil {
		return question.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM questions WHERE question_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return question.ErrQuestionNotFound
	}
	return nil
}

func scanQuestions(rows pgx.Rows) ([]question.Question, error) {
	var out []question.Question
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return out, nil
}
