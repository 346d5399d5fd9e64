package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"
	// wireTimeLayout is the canonical timestamp sent for datetime bounds.
	wireTimeLayout = "2006-01-02T15:04:05.000Z"
)

// Filter is the user-editable part of a list view's query. Implementations
// hold text as typed and derive wire parameters on demand.
type Filter interface {
	comparable
	Params() (*Params, error)
}

// ProductFilter narrows the product catalog.
type ProductFilter struct {
	CategoryID string `json:"category_id,omitempty"`
	Query      string `json:"q,omitempty"`
	MinPrice   string `json:"min_price,omitempty"`
	MaxPrice   string `json:"max_price,omitempty"`
}

func (f ProductFilter) Params() (*Params, error) {
	p := NewParams()
	id, err := parseOptionalID("category", f.CategoryID)
	if err != nil {
		return nil, err
	}
	p.Set("category_id", id)
	p.Set("q", strings.TrimSpace(f.Query))

	minPrice, err := parseOptionalPrice("min price", f.MinPrice)
	if err != nil {
		return nil, err
	}
	maxPrice, err := parseOptionalPrice("max price", f.MaxPrice)
	if err != nil {
		return nil, err
	}
	p.Set("min_price", minPrice)
	p.Set("max_price", maxPrice)
	return p, nil
}

// OrderFilter narrows the order list by customer and order date.
type OrderFilter struct {
	UserID    string `json:"user_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

func (f OrderFilter) Params() (*Params, error) {
	p := NewParams()
	id, err := parseOptionalID("user", f.UserID)
	if err != nil {
		return nil, err
	}
	p.Set("user_id", id)

	start, err := CanonicalTimestamp(f.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := CanonicalTimestamp(f.EndDate)
	if err != nil {
		return nil, err
	}
	p.Set("start_date", start)
	p.Set("end_date", end)
	return p, nil
}

// UserFilter has no fields; the user list is only paginated.
type UserFilter struct{}

func (UserFilter) Params() (*Params, error) { return NewParams(), nil }

// SalesWindow bounds the daily-sales series. Blank bounds are open-ended.
type SalesWindow struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

func (w SalesWindow) Params() (*Params, error) {
	p := NewParams()
	for _, bound := range []struct{ key, value string }{
		{"start_date", w.StartDate},
		{"end_date", w.EndDate},
	} {
		v := strings.TrimSpace(bound.value)
		if v == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, v); err != nil {
			return nil, Invalidf("%s must be a date (YYYY-MM-DD), got %q", bound.key, v)
		}
		p.Set(bound.key, v)
	}
	return p, nil
}

// CanonicalTimestamp converts a date or datetime typed by the user into the
// timestamp form the API expects. A bare date means midnight UTC. Blank
// input returns "" so the parameter is omitted.
func CanonicalTimestamp(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC().Format(wireTimeLayout), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC().Format(wireTimeLayout), nil
	}
	return "", Invalidf("invalid date %q (expected YYYY-MM-DD)", s)
}

// ParsePositiveInt parses a whole number greater than zero.
func ParsePositiveInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func parseOptionalID(name, s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	n, ok := ParsePositiveInt(s)
	if !ok {
		return nil, Invalidf("%s id must be a positive whole number, got %q", name, s)
	}
	return &n, nil
}

func parseOptionalPrice(name, s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil, Invalidf("%s must be a non-negative number, got %q", name, s)
	}
	return &d, nil
}
