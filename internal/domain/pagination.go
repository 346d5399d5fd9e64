package domain

import "fmt"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pager is the limit/offset window a list view asks for.
// Offset is always a non-negative multiple of Limit.
type Pager struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPager returns a pager on the first page. Non-positive limits fall back
// to DefaultPageSize.
func NewPager(limit int) Pager {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return Pager{Limit: limit}
}

// Step moves one page forward (+1) or back (-1), never below zero.
func (p *Pager) Step(direction int) {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	}
	p.Offset = max(0, p.Offset+direction*p.Limit)
}

// Seek jumps to the page containing offset.
func (p *Pager) Seek(offset int) {
	if offset <= 0 || p.Limit <= 0 {
		p.Offset = 0
		return
	}
	p.Offset = offset - offset%p.Limit
}

// SeekPage jumps to the 1-based page number.
func (p *Pager) SeekPage(page int) {
	p.Seek((page - 1) * p.Limit)
}

// SetLimit changes the page size and returns to the first page.
func (p *Pager) SetLimit(limit int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	p.Limit = limit
	p.Offset = 0
}

// Reset returns to the first page.
func (p *Pager) Reset() { p.Offset = 0 }

// Params returns the limit and offset query parameters.
func (p Pager) Params() *Params {
	return NewParams().Set("limit", p.Limit).Set("offset", p.Offset)
}

// PageInfo is the window the server reports back with the total count.
type PageInfo struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Pagination is the derived state of the pagination controls.
type Pagination struct {
	Start   int  `json:"start"`
	End     int  `json:"end"`
	Total   int  `json:"total"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// Paginate derives the displayed range and control state from the pager
// the view is on and the total the server reported.
func Paginate(p Pager, total int) Pagination {
	pg := Pagination{
		Total:   max(0, total),
		HasPrev: p.Offset > 0,
		HasNext: p.Offset+p.Limit < total,
	}
	if pg.Total > 0 {
		pg.Start = p.Offset + 1
		pg.End = min(p.Offset+p.Limit, pg.Total)
	}
	return pg
}

// Summary renders the range the way the list footers show it.
func (p Pagination) Summary() string {
	return fmt.Sprintf("Showing %d - %d of %d", p.Start, p.End, p.Total)
}
