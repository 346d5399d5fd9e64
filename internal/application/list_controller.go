package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// ListState is a snapshot of a list view.
type ListState[F domain.Filter, R any] struct {
	Filter  F               `json:"filter"`
	Pager   domain.Pager    `json:"pager"`
	Rows    []R             `json:"items"`
	Page    domain.PageInfo `json:"page"`
	Loading bool            `json:"loading"`
	Error   string          `json:"error,omitempty"`
	// Loaded is set once any request has succeeded.
	Loaded bool `json:"loaded"`
}

// ListController owns the filter, pagination and rows of one paginated
// list endpoint.
//
// Every Refresh takes a sequence token. A response is applied only while
// its token is still the latest issued, so a slow earlier request can never
// overwrite the result of a later one.
type ListController[F domain.Filter, R any] struct {
	api  domain.APIClient
	path string

	mu    sync.Mutex
	seq   uint64
	state ListState[F, R]
}

// NewListController creates a controller for the list endpoint at path.
func NewListController[F domain.Filter, R any](api domain.APIClient, path string, filter F, limit int) *ListController[F, R] {
	return &ListController[F, R]{
		api:  api,
		path: path,
		state: ListState[F, R]{
			Filter: filter,
			Pager:  domain.NewPager(limit),
			Rows:   []R{},
		},
	}
}

// State returns a copy of the current state.
func (c *ListController[F, R]) State() ListState[F, R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Rows = append([]R(nil), c.state.Rows...)
	return s
}

// Pagination derives the range summary and control state. No request is made.
func (c *ListController[F, R]) Pagination() domain.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Paginate(c.state.Pager, c.state.Page.Total)
}

// Refresh fetches the current page. On failure the previous rows are kept
// and the message is recorded. A response superseded by a newer Refresh is
// discarded and nil is returned.
func (c *ListController[F, R]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	token := c.seq
	filter, pager := c.state.Filter, c.state.Pager
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()

	var page domain.Page[R]
	params, err := filter.Params()
	if err == nil {
		err = c.api.Get(ctx, c.path, pager.Params().Merge(params), &page)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return nil
	}
	c.state.Loading = false
	if err != nil {
		c.state.Error = domain.MessageOf(err)
		return fmt.Errorf("listing %s: %w", c.path, err)
	}
	if page.Items == nil {
		page.Items = []R{}
	}
	c.state.Rows = page.Items
	c.state.Page = page.Info()
	c.state.Loaded = true
	return nil
}

// Mount installs an initial filter and window and performs the first fetch.
// The offset is normalized to a multiple of the limit.
func (c *ListController[F, R]) Mount(ctx context.Context, filter F, pager domain.Pager) error {
	c.mu.Lock()
	c.state.Filter = filter
	c.state.Pager = domain.NewPager(pager.Limit)
	c.state.Pager.Seek(pager.Offset)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// UpdateFilter applies edit to the filter, returns to the first page and
// refreshes. Nothing is fetched when neither the filter nor the offset
// actually changed.
func (c *ListController[F, R]) UpdateFilter(ctx context.Context, edit func(*F)) error {
	c.mu.Lock()
	next := c.state.Filter
	edit(&next)
	changed := next != c.state.Filter || c.state.Pager.Offset != 0
	c.state.Filter = next
	c.state.Pager.Reset()
	c.mu.Unlock()

	if !changed {
		return nil
	}
	return c.Refresh(ctx)
}

// SetFilter replaces the whole filter. See UpdateFilter.
func (c *ListController[F, R]) SetFilter(ctx context.Context, f F) error {
	return c.UpdateFilter(ctx, func(cur *F) { *cur = f })
}

// SetLimit changes the page size, which also returns to the first page.
func (c *ListController[F, R]) SetLimit(ctx context.Context, limit int) error {
	return c.movePager(ctx, func(p *domain.Pager) { p.SetLimit(limit) })
}

// NextPage advances one page. It is a no-op on the last page.
func (c *ListController[F, R]) NextPage(ctx context.Context) error {
	c.mu.Lock()
	hasNext := domain.Paginate(c.state.Pager, c.state.Page.Total).HasNext
	c.mu.Unlock()
	if !hasNext {
		return nil
	}
	return c.movePager(ctx, func(p *domain.Pager) { p.Step(1) })
}

// PrevPage goes back one page, never before the first.
func (c *ListController[F, R]) PrevPage(ctx context.Context) error {
	return c.movePager(ctx, func(p *domain.Pager) { p.Step(-1) })
}

// SeekPage jumps to a 1-based page number.
func (c *ListController[F, R]) SeekPage(ctx context.Context, page int) error {
	return c.movePager(ctx, func(p *domain.Pager) { p.SeekPage(page) })
}

func (c *ListController[F, R]) movePager(ctx context.Context, move func(*domain.Pager)) error {
	c.mu.Lock()
	before := c.state.Pager
	move(&c.state.Pager)
	changed := c.state.Pager != before
	c.mu.Unlock()

	if !changed {
		return nil
	}
	return c.Refresh(ctx)
}
