package repository

import "math"

const (
	DefaultPageSize      = 10
	DefaultReplyPageSize = 100
	MaxPageSize          = 100
)

// PageVerify normalises page and pageSize read from a request. A negative
// page becomes 0 and a size outside [1, MaxPageSize] becomes defaultSize.
func PageVerify(page, pageSize *int, defaultSize int) {
	if *page < 0 {
		*page = 0
	}
	if *pageSize <= 0 || *pageSize > MaxPageSize {
		*pageSize = defaultSize
	}
}

// Offset returns the index of the first item on page. A page whose offset
// does not fit in an int yields math.MaxInt, which lies past any real total.
func Offset(page, pageSize int) int {
	if pageSize > 0 && page > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return page * pageSize
}

// PageBounds returns the [start, end) window of page over total items.
// A page starting beyond total yields start == end == 0.
func PageBounds(total, page, pageSize int) (start, end int) {
	if pageSize <= 0 || page < 0 || page > (math.MaxInt-pageSize)/pageSize {
		return 0, 0
	}
	start = Offset(page, pageSize)
	end = min(start+pageSize, total)
	if start > total {
		start, end = 0, 0
	}
	return start, end
}

// SlicePage cuts one page out of a fully loaded, already ordered list.
func SlicePage[T any](items []T, page, pageSize int) []T {
	start, end := PageBounds(len(items), page, pageSize)
	if start >= end {
		return []T{}
	}
	return items[start:end]
}
