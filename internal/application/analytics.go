package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// AnalyticsState is a snapshot of the daily-sales view.
type AnalyticsState struct {
	Window  domain.SalesWindow  `json:"window"`
	Series  []domain.ChartPoint `json:"series"`
	Loading bool                `json:"loading"`
	Error   string              `json:"error,omitempty"`
}

// Empty reports the "no data" state: settled with nothing to chart.
func (s AnalyticsState) Empty() bool {
	return !s.Loading && len(s.Series) == 0
}

// AnalyticsController fetches the daily-sales series for a date window.
type AnalyticsController struct {
	api domain.APIClient

	mu    sync.Mutex
	seq   uint64
	state AnalyticsState
}

func NewAnalyticsController(api domain.APIClient) *AnalyticsController {
	return &AnalyticsController{api: api, state: AnalyticsState{Series: []domain.ChartPoint{}}}
}

// State returns a copy of the current state.
func (c *AnalyticsController) State() AnalyticsState {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Series = append([]domain.ChartPoint(nil), c.state.Series...)
	return s
}

// SetWindow edits the date bounds without fetching; Apply fetches.
func (c *AnalyticsController) SetWindow(w domain.SalesWindow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Window = w
}

// Apply fetches the series for the current window.
func (c *AnalyticsController) Apply(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	token := c.seq
	window := c.state.Window
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()

	var resp domain.ItemList[domain.SalesPoint]
	params, err := window.Params()
	if err == nil {
		err = c.api.Get(ctx, PathDailySales, params, &resp)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return nil
	}
	c.state.Loading = false
	if err != nil {
		c.state.Error = domain.MessageOf(err)
		return fmt.Errorf("loading daily sales: %w", err)
	}
	c.state.Series = domain.NormalizeSeries(resp.Items)
	return nil
}
