package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Page is the envelope returned by every paginated list endpoint.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Info returns the page metadata without the rows.
func (p Page[T]) Info() PageInfo {
	return PageInfo{Total: p.Total, Limit: p.Limit, Offset: p.Offset}
}

// ItemList is the envelope of unpaginated collections.
type ItemList[T any] struct {
	Items []T `json:"items"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Price      decimal.Decimal `json:"price"`
	InStock    int             `json:"in_stock"`
	CreatedAt  Timestamp       `json:"created_at,omitempty"`
}

type User struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt Timestamp `json:"created_at,omitempty"`
}

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	OrderDate Timestamp   `json:"order_date"`
	Status    OrderStatus `json:"status"`
}

// Order is a single order with its line items.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	OrderDate Timestamp   `json:"order_date"`
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"items"`
}

// Total sums the line totals of every item.
func (o Order) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

type OrderItem struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	ProductSKU  string          `json:"product_sku,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// LineTotal is unit price times quantity. Display only.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Label prefers the product name and falls back to the id.
func (i OrderItem) Label() string {
	if i.ProductName != "" {
		return i.ProductName
	}
	return fmt.Sprintf("%d", i.ProductID)
}

// SalesPoint is one day of the daily-sales series as sent on the wire.
type SalesPoint struct {
	SaleDay    string          `json:"sale_day"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// ChartPoint is what the chart renderer consumes.
type ChartPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// NormalizeSeries converts decimal totals into plain numbers for charting.
func NormalizeSeries(rows []SalesPoint) []ChartPoint {
	out := make([]ChartPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, ChartPoint{X: r.SaleDay, Y: r.TotalSales.InexactFloat64()})
	}
	return out
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status string `json:"status"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp decodes the API's datetimes, which may or may not carry a zone.
// Zoneless values are read as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// Display formats the timestamp for tables.
func (t Timestamp) Display() string {
	if t.IsZero() {
		return "-"
	}
	return t.Time.Format("2006-01-02 15:04")
}
