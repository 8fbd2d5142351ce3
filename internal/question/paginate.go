package question

// QuestionsPerPage is the fixed page size for every listing endpoint.
const QuestionsPerPage = 10

// paginate slices items into the 1-based page. Pages before the first clamp
// to page one; pages past the end yield an empty slice, never an error.
func paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
