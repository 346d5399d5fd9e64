package application

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// DetailState is a snapshot of a detail view.
type DetailState[T any] struct {
	ID      string `json:"id"`
	Entity  *T     `json:"entity"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// View picks the rendering: loading, then error, then not found, then ready.
func (s DetailState[T]) View() domain.View {
	return domain.ViewOf(s.Loading, s.Error, s.Entity != nil)
}

// DetailController loads a single entity from <resource>/<id>.
type DetailController[T any] struct {
	api      domain.APIClient
	resource string

	mu    sync.Mutex
	seq   uint64
	state DetailState[T]
}

func NewDetailController[T any](api domain.APIClient, resource string) *DetailController[T] {
	return &DetailController[T]{api: api, resource: resource}
}

type (
	OrderDetailController   = DetailController[domain.Order]
	ProductDetailController = DetailController[domain.Product]
)

func NewOrderDetailController(api domain.APIClient) *OrderDetailController {
	return NewDetailController[domain.Order](api, PathOrders)
}

func NewProductDetailController(api domain.APIClient) *ProductDetailController {
	return NewDetailController[domain.Product](api, PathProducts)
}

// State returns a copy of the current state.
func (c *DetailController[T]) State() DetailState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load fetches the entity identified by id. The previous entity is kept
// while the same id is reloaded and dropped when the id changes. A response
// without content leaves the view not found.
func (c *DetailController[T]) Load(ctx context.Context, id string) error {
	c.mu.Lock()
	c.seq++
	token := c.seq
	if c.state.ID != id {
		c.state.Entity = nil
	}
	c.state.ID = id
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()

	// Stays nil when the API answers with no content or a JSON null.
	var entity *T
	var err error
	n, ok := domain.ParsePositiveInt(id)
	if !ok {
		err = domain.Invalidf("invalid id %q", id)
	} else {
		err = c.api.Get(ctx, c.resource+"/"+strconv.FormatInt(n, 10), nil, &entity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return nil
	}
	c.state.Loading = false
	if err != nil {
		c.state.Error = domain.MessageOf(err)
		return fmt.Errorf("loading %s/%s: %w", c.resource, id, err)
	}
	c.state.Entity = entity
	return nil
}
