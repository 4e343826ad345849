package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_Bounds(t *testing.T) {
	p := Paginate(20, 1, 8)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 0, p.Start)
	assert.Equal(t, 8, p.End)

	p = Paginate(20, 3, 8)
	assert.Equal(t, 16, p.Start)
	assert.Equal(t, 20, p.End)
}

func TestPaginate_TotalPagesIsCeil(t *testing.T) {
	assert.Equal(t, 3, Paginate(17, 1, 8).TotalPages)
	assert.Equal(t, 2, Paginate(16, 1, 8).TotalPages)
	assert.Equal(t, 1, Paginate(1, 1, 8).TotalPages)
	assert.Equal(t, 0, Paginate(0, 1, 8).TotalPages)
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	// a stale deep-page link after filters narrowed the collection
	p := Paginate(5, 99, 8)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 0, p.Start)
	assert.Equal(t, 5, p.End)

	p = Paginate(20, -3, 8)
	assert.Equal(t, 1, p.Number)
}

func TestPaginate_EmptyCollection(t *testing.T) {
	p := Paginate(0, 1, 8)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 0, p.Start)
	assert.Equal(t, 0, p.End)
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPage_Navigation(t *testing.T) {
	p := Paginate(30, 2, 10)
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 1, p.Prev())
	assert.Equal(t, 3, p.Next())
	assert.Equal(t, []int{1, 2, 3}, p.PageNumbers())
}

func TestPaginate_SlicesCoverEveryItemOnce(t *testing.T) {
	const n, size = 53, 6
	total := Paginate(n, 1, size).TotalPages
	covered := 0
	prevEnd := 0
	for page := 1; page <= total; page++ {
		p := Paginate(n, page, size)
		assert.Equal(t, prevEnd, p.Start, "page %d must start where page %d ended", page, page-1)
		covered += p.End - p.Start
		prevEnd = p.End
	}
	assert.Equal(t, n, covered)
}
