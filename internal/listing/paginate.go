package listing

// DefaultPageSize is the number of posts on one index page.
const DefaultPageSize = 6

// Page is one slice of a paginated list.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
	// Start and End are 1-based display bounds; both are 0 on an empty page.
	Start int
	End   int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// Paginate returns page number of items. Out-of-range numbers are clamped
// into [1, TotalPages]; an empty list has a single empty page 1.
func Paginate[T any](items []T, number int, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size
	number = max(1, min(number, max(totalPages, 1)))

	start := (number - 1) * size
	end := min(start+size, total)
	page := Page[T]{
		Items:      items[start:end:end],
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
	if end > start {
		page.Start = start + 1
		page.End = end
	}
	return page
}
