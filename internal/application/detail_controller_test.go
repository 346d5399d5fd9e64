package application_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/httpapi"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderJSON = `{
  "id": 12, "user_id": 4, "status": "shipped", "order_date": "2024-03-01T09:15:00",
  "items": [
    {"id": 1, "product_id": 5, "product_name": "Desk lamp", "product_sku": "SKU00000005", "unit_price": "19.99", "quantity": 2},
    {"id": 2, "product_id": 9, "product_name": null, "product_sku": null, "unit_price": 3, "quantity": 1}
  ]
}`

func TestDetailController_InitialViewIsNotFound(t *testing.T) {
	ctl := application.NewOrderDetailController(newFakeAPI(respond(orderJSON)))
	assert.Equal(t, domain.ViewNotFound, ctl.State().View())
}

func TestDetailController_Load(t *testing.T) {
	api := newFakeAPI(respond(orderJSON))
	ctl := application.NewOrderDetailController(api)

	require.NoError(t, ctl.Load(context.Background(), "12"))

	st := ctl.State()
	assert.Equal(t, domain.ViewReady, st.View())
	require.NotNil(t, st.Entity)
	assert.Equal(t, int64(12), st.Entity.ID)
	require.Len(t, st.Entity.Items, 2)
	assert.Equal(t, "39.98", st.Entity.Items[0].LineTotal().StringFixed(2))
	assert.Equal(t, "9", st.Entity.Items[1].Label())
	assert.Equal(t, "/orders/12", api.LastCall().Path)
}

func TestDetailController_Error(t *testing.T) {
	api := newFakeAPI(fail(404, "Order not found"))
	ctl := application.NewOrderDetailController(api)

	err := ctl.Load(context.Background(), "99")
	require.Error(t, err)

	st := ctl.State()
	assert.Equal(t, domain.ViewError, st.View())
	assert.Equal(t, "Order not found", st.Error)
	assert.False(t, st.Loading)
}

func TestDetailController_InvalidIDMakesNoRequest(t *testing.T) {
	api := newFakeAPI(respond(orderJSON))
	ctl := application.NewProductDetailController(api)

	require.Error(t, ctl.Load(context.Background(), "../users"))
	assert.Empty(t, api.Calls())
	assert.Equal(t, domain.ViewError, ctl.State().View())
}

func TestDetailState_ViewPriority(t *testing.T) {
	st := application.DetailState[int]{Loading: true, Error: "x"}
	assert.Equal(t, domain.ViewLoading, st.View())

	st.Loading = false
	assert.Equal(t, domain.ViewError, st.View())

	st.Error = ""
	assert.Equal(t, domain.ViewNotFound, st.View())

	n := 1
	st.Entity = &n
	assert.Equal(t, domain.ViewReady, st.View())
	assert.Equal(t, "ready", st.View().String())
}

func TestDetailController_EmptyResponseIsNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"no content", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}},
		{"json null", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, "null")
		}},
		{"plain text", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = io.WriteString(w, "ok")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			ctl := application.NewOrderDetailController(httpapi.New(domain.ClientConfig{BaseURL: srv.URL}))

			require.NoError(t, ctl.Load(context.Background(), "1"))

			st := ctl.State()
			assert.Nil(t, st.Entity)
			assert.Equal(t, domain.ViewNotFound, st.View())
		})
	}
}

func TestDetailController_EmptyReloadDropsEntity(t *testing.T) {
	api := newFakeAPI(respond(orderJSON))
	ctl := application.NewOrderDetailController(api)
	require.NoError(t, ctl.Load(context.Background(), "12"))

	api.SetHandler(respond("null"))
	require.NoError(t, ctl.Load(context.Background(), "12"))

	assert.Equal(t, domain.ViewNotFound, ctl.State().View())
}

func TestDetailController_FailedLoadOfOtherIDDropsEntity(t *testing.T) {
	api := newFakeAPI(respond(orderJSON))
	ctl := application.NewOrderDetailController(api)
	require.NoError(t, ctl.Load(context.Background(), "12"))

	api.SetHandler(fail(404, "Order not found"))
	require.Error(t, ctl.Load(context.Background(), "13"))

	st := ctl.State()
	assert.Equal(t, "13", st.ID)
	assert.Nil(t, st.Entity)
	assert.Equal(t, domain.ViewError, st.View())
}

func TestDetailController_FailedReloadKeepsEntity(t *testing.T) {
	api := newFakeAPI(respond(orderJSON))
	ctl := application.NewOrderDetailController(api)
	require.NoError(t, ctl.Load(context.Background(), "12"))

	api.SetHandler(fail(503, "Service unavailable"))
	require.Error(t, ctl.Load(context.Background(), "12"))

	st := ctl.State()
	require.NotNil(t, st.Entity)
	assert.Equal(t, int64(12), st.Entity.ID)
	assert.Equal(t, "Service unavailable", st.Error)
}

func TestDetailController_LastIssuedRequestWins(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	api := newFakeAPI(func(c apiCall) (string, error) {
		if c.Path == "/orders/1" {
			close(started)
			<-release
			return `{"id": 1, "user_id": 4, "status": "pending", "items": []}`, nil
		}
		return `{"id": 2, "user_id": 4, "status": "paid", "items": []}`, nil
	})
	ctl := application.NewOrderDetailController(api)
	ctx := context.Background()

	done := make(chan error)
	go func() {
		done <- ctl.Load(ctx, "1")
	}()
	<-started

	require.NoError(t, ctl.Load(ctx, "2"))
	close(release)
	require.NoError(t, <-done)

	st := ctl.State()
	require.NotNil(t, st.Entity)
	assert.Equal(t, int64(2), st.Entity.ID)
	assert.Equal(t, "2", st.ID)
	assert.False(t, st.Loading)
}
