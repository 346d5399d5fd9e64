package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSeries(t *testing.T) {
	var rows []domain.SalesPoint
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"sale_day":"2024-01-01","total_sales":"123.40"},{"sale_day":"2024-01-02","total_sales":7}]`),
		&rows,
	))

	points := domain.NormalizeSeries(rows)
	require.Len(t, points, 2)
	assert.Equal(t, domain.ChartPoint{X: "2024-01-01", Y: 123.4}, points[0])
	assert.Equal(t, 7.0, points[1].Y)
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := domain.OrderItem{UnitPrice: decimal.RequireFromString("19.99"), Quantity: 3}
	assert.Equal(t, "59.97", item.LineTotal().StringFixed(2))

	order := domain.Order{Items: []domain.OrderItem{item, {UnitPrice: decimal.NewFromInt(5), Quantity: 2}}}
	assert.Equal(t, "69.97", order.Total().StringFixed(2))
}

func TestOrderItem_LabelFallsBackToID(t *testing.T) {
	assert.Equal(t, "Desk lamp", domain.OrderItem{ProductID: 4, ProductName: "Desk lamp"}.Label())
	assert.Equal(t, "4", domain.OrderItem{ProductID: 4}.Label())
}

func TestTimestamp_AcceptsZonelessValues(t *testing.T) {
	var o domain.OrderSummary
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":1,"user_id":2,"order_date":"2024-02-03T04:05:06.123456","status":"paid"}`),
		&o,
	))
	assert.Equal(t, 2024, o.OrderDate.Year())
	assert.Equal(t, "2024-02-03 04:05", o.OrderDate.Display())
	assert.Equal(t, domain.StatusPaid, o.Status)
}

func TestTimestamp_RejectsGarbage(t *testing.T) {
	var ts domain.Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &ts))
	assert.Equal(t, "-", domain.Timestamp{}.Display())
}

func TestPage_Info(t *testing.T) {
	var page domain.Page[domain.Product]
	require.NoError(t, json.Unmarshal(
		[]byte(`{"items":[{"id":1,"name":"Mug","sku":"SKU00000001","price":"4.50","in_stock":3,"category_id":2}],"total":11,"limit":10,"offset":10}`),
		&page,
	))
	assert.Equal(t, domain.PageInfo{Total: 11, Limit: 10, Offset: 10}, page.Info())
	assert.Equal(t, "4.5", page.Items[0].Price.String())
}
