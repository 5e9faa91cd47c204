package domain

import "math"

const (
	// PageSize is the number of entries on one board page.
	PageSize = 10

	// PageBlockSize is how many page numbers the pager shows at once.
	PageBlockSize = 10

	// MaxPage is the highest page whose offset and pager window fit in an int.
	MaxPage = math.MaxInt/PageSize - 1
)

// ClampPage folds page into [0, MaxPage].
func ClampPage(page int) int {
	return min(max(page, 0), MaxPage)
}

// PageBlock returns the pager window containing page (zero based). It is a
// pure function of page: callers clamp end against the real last page.
func PageBlock(page int) (start, end int) {
	page = ClampPage(page)
	start = (page/PageBlockSize)*PageBlockSize + 1
	end = start + PageBlockSize - 1
	return start, end
}

// Page is one window of a listing.
type Page[T any] struct {
	Items      []T
	Number     int // zero based
	Size       int
	Total      int64
	StartBlock int
	EndBlock   int
}

// NewPage fills in the pager window for number.
func NewPage[T any](items []T, number, size int, total int64) Page[T] {
	start, end := PageBlock(number)
	return Page[T]{
		Items:      items,
		Number:     number,
		Size:       size,
		Total:      total,
		StartBlock: start,
		EndBlock:   end,
	}
}

// TotalPages is the number of pages needed for Total items.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// Last reports whether this is the final page.
func (p Page[T]) Last() bool { return p.Number+1 >= p.TotalPages() }
