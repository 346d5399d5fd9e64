package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// CreateOrderState is a snapshot of the order form.
type CreateOrderState struct {
	Draft   domain.OrderDraft `json:"draft"`
	Loading bool              `json:"loading"`
	Error   string            `json:"error,omitempty"`
	Created *domain.Order     `json:"created,omitempty"`
}

// CreateOrderController owns an order draft and submits it.
type CreateOrderController struct {
	api domain.APIClient

	mu    sync.Mutex
	state CreateOrderState
}

func NewCreateOrderController(api domain.APIClient) *CreateOrderController {
	return &CreateOrderController{
		api:   api,
		state: CreateOrderState{Draft: domain.NewOrderDraft()},
	}
}

// State returns a copy of the current state.
func (c *CreateOrderController) State() CreateOrderState {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Draft = copyDraft(c.state.Draft)
	return s
}

func (c *CreateOrderController) SetUserID(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Draft.UserID = userID
}

func (c *CreateOrderController) SetStatus(status domain.OrderStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Draft.Status = status
}

func (c *CreateOrderController) AddItem() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Draft.AddItem()
}

func (c *CreateOrderController) RemoveItem(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Draft.RemoveItem(index)
}

func (c *CreateOrderController) UpdateItem(index int, field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Draft.UpdateItem(index, field, value)
}

// Submit validates the draft and posts it. Validation failures never reach
// the network. On success the draft is reset; on failure it is kept so it
// can be corrected and resubmitted.
func (c *CreateOrderController) Submit(ctx context.Context) (*domain.Order, error) {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return nil, domain.Invalidf("an order is already being submitted")
	}
	c.state.Error = ""
	c.state.Created = nil

	payload, err := c.state.Draft.Build()
	if err != nil {
		c.state.Error = domain.MessageOf(err)
		c.mu.Unlock()
		return nil, err
	}
	c.state.Loading = true
	c.mu.Unlock()

	var order domain.Order
	err = c.api.Post(ctx, PathOrders, payload, &order)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false
	if err != nil {
		c.state.Error = domain.MessageOf(err)
		return nil, fmt.Errorf("creating order: %w", err)
	}
	c.state.Created = &order
	c.state.Draft = domain.NewOrderDraft()
	return &order, nil
}

func copyDraft(d domain.OrderDraft) domain.OrderDraft {
	d.Items = append([]domain.DraftItem(nil), d.Items...)
	return d
}
