package listing

// Page describes one slice of a filtered collection.
type Page struct {
	Number     int // 1-based, clamped into [1, TotalPages]
	Size       int
	TotalItems int
	TotalPages int // ceil(TotalItems/Size); 0 when the collection is empty
	Start, End int // half-open slice bounds into the filtered collection
}

// Paginate computes slice bounds for page number over n items with the given
// page size. Out-of-range page numbers are clamped rather than rejected, so a
// stale page link after a filter change still renders the nearest valid page.
func Paginate(n, page, size int) Page {
	if size <= 0 {
		size = 1
	}
	totalPages := 0
	if n > 0 {
		totalPages = (n + size - 1) / size
	}
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	start := (page - 1) * size
	if start > n {
		start = n
	}
	end := start + size
	if end > n {
		end = n
	}
	return Page{
		Number:     page,
		Size:       size,
		TotalItems: n,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

// PageNumbers lists 1..TotalPages for pager links.
func (p Page) PageNumbers() []int {
	nums := make([]int, p.TotalPages)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Prev returns the previous page number (clamped to 1).
func (p Page) Prev() int {
	if p.Number > 1 {
		return p.Number - 1
	}
	return 1
}

// Next returns the next page number (clamped to TotalPages).
func (p Page) Next() int {
	if p.Number < p.TotalPages {
		return p.Number + 1
	}
	return p.TotalPages
}
