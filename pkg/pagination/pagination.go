package pagination

import "fmt"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params holds 1-indexed page parameters.
type Params struct {
	Page     int
	PageSize int
}

// New normalizes page and size: page below 1 becomes 1, size outside
// (0, MaxPageSize] falls back to DefaultPageSize or MaxPageSize.
func New(page, size int) Params {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Params{Page: page, PageSize: size}
}

// Offset is the index of the first item on the page. Callers must keep Page
// within PageCount; Bounds does that check before calling it.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Bounds returns the half-open [start, end) slice bounds of the page within
// total items. A page outside 1..PageCount yields start == end == total.
func (p Params) Bounds(total int) (start, end int) {
	if p.Page < 1 || p.Page > PageCount(total, p.PageSize) {
		return total, total
	}
	start = p.Offset()
	end = total
	if p.PageSize < total-start {
		end = start + p.PageSize
	}
	return start, end
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	return p.Page >= 1 && p.Page < PageCount(total, p.PageSize)
}

// HasPrevious returns true if there are results before the current page.
func (p Params) HasPrevious() bool {
	return p.Page > 1
}

// PageCount returns ceil(total / size). Zero items means zero pages.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

// Summary renders the "Showing a to b of n" line used under directory tables.
func (p Params) Summary(total int) string {
	start, end := p.Bounds(total)
	if start == end {
		return fmt.Sprintf("Showing 0 of %d", total)
	}
	return fmt.Sprintf("Showing %d to %d of %d", start+1, end, total)
}
