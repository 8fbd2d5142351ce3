package question

import (
	"context"
	"fmt"
	"math/rand"
)

// AllCategories is the category selector meaning "draw from the whole bank".
const AllCategories int64 = 0

// Rand is the random source for quiz draws, injected so tests can seed it.
// *rand.Rand satisfies it directly.
type Rand interface {
	Intn(n int) int
}

type processRand struct{}

func (processRand) Intn(n int) int { return rand.Intn(n) }

// Draw selects one question uniformly at random from the chosen category
// (AllCategories for the whole bank), skipping every id in previousIDs.
// A nil question means the pool is exhausted; callers treat that as quiz
// completion, not an error. Session state lives entirely with the caller.
func (s *Service) Draw(ctx context.Context, categoryID int64, previousIDs []int64) (*Formatted, error) {
	var (
		pool []Question
		err  error
	)
	if categoryID == AllCategories {
		pool, err = s.store.ListQuestions(ctx)
	} else {
		pool, err = s.store.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("build quiz pool: %w", err)
	}

	seen := make(map[int64]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	candidates := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, served := seen[q.ID]; !served {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	picked := format(candidates[s.rng.Intn(len(candidates))])
	return &picked, nil
}
