package domain_test

import (
	"testing"

	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParams_SkipsAbsentValues(t *testing.T) {
	var nilID *int64
	var nilPrice *decimal.Decimal

	p := domain.NewParams().
		Set("limit", 10).
		Set("q", "").
		Set("user_id", nilID).
		Set("min_price", nilPrice).
		Set("missing", nil).
		Set("offset", 0)

	assert.Equal(t, []string{"limit", "offset"}, p.Keys())
	assert.Equal(t, "limit=10&offset=0", p.Values().Encode())
}

func TestParams_SetAbsentRemovesEarlierValue(t *testing.T) {
	p := domain.NewParams().Set("q", "lamp")
	p.Set("q", "")

	_, ok := p.Get("q")
	assert.False(t, ok)
	assert.Equal(t, 0, p.Len())
}

func TestParams_FormatsPointersAndDecimals(t *testing.T) {
	id := int64(7)
	price := decimal.RequireFromString("12.50")

	p := domain.NewParams().Set("category_id", &id).Set("max_price", &price)

	v, _ := p.Get("category_id")
	assert.Equal(t, "7", v)
	v, _ = p.Get("max_price")
	assert.Equal(t, "12.5", v)
}

func TestParams_MergeKeepsOrder(t *testing.T) {
	p := domain.NewParams().Set("limit", 10).Set("offset", 20)
	p.Merge(domain.NewParams().Set("q", "mug").Set("limit", 25))

	assert.Equal(t, []string{"limit", "offset", "q"}, p.Keys())
	v, _ := p.Get("limit")
	assert.Equal(t, "25", v)
}
