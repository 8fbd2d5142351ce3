package question

// Category is a topic bucket that questions reference by id. Categories are
// seeded at migration time and read-only at runtime.
type Category struct {
	ID    int64
	Label string
}

// Question is the canonical stored record. CategoryID is a soft reference:
// nothing enforces that a matching category row exists, an orphaned id just
// never matches category filters.
type Question struct {
	ID         int64
	Text       string
	Answer     string
	CategoryID int64
	Difficulty int
}

// NewQuestion is an insert candidate before the store assigns an id.
type NewQuestion struct {
	Text       string
	Answer     string
	CategoryID int64
	Difficulty int
}

// Formatted is the public question shape delivered to clients.
type Formatted struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryMap is the public category shape: id -> display label.
type CategoryMap map[int64]string

// ListResult is the payload of the paginated full listing.
// TotalQuestions counts the bank before the page was sliced.
type ListResult struct {
	Questions      []Formatted
	TotalQuestions int
	Categories     CategoryMap
}

// SearchResult is the payload of a substring search. CurrentCategories
// carries the category id of every match before pagination, one entry per
// match; clients depend on that list shape.
type SearchResult struct {
	Questions         []Formatted
	TotalQuestions    int
	CurrentCategories []int64
}

// CategoryResult is the payload of a by-category listing. TotalQuestions
// counts the returned page, not the whole category; this mirrors the
// behavior clients were built against.
type CategoryResult struct {
	Questions      []Formatted
	TotalQuestions int
	CategoryID     int64
}

func format(q Question) Formatted {
	return Formatted{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

func formatQuestions(qs []Question) []Formatted {
	out := make([]Formatted, 0, len(qs))
	for _, q := range qs {
		out = append(out, format(q))
	}
	return out
}
