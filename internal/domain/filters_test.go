package domain_test

import (
	"testing"

	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFilter_BlankFieldsOmitted(t *testing.T) {
	p, err := domain.ProductFilter{}.Params()
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
}

func TestProductFilter_AllFields(t *testing.T) {
	p, err := domain.ProductFilter{
		CategoryID: "3",
		Query:      "  lamp ",
		MinPrice:   "0",
		MaxPrice:   "19.99",
	}.Params()
	require.NoError(t, err)

	assert.Equal(t, "category_id=3&max_price=19.99&min_price=0&q=lamp", p.Values().Encode())
}

func TestProductFilter_RejectsBadInput(t *testing.T) {
	_, err := domain.ProductFilter{CategoryID: "abc"}.Params()
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = domain.ProductFilter{MinPrice: "-1"}.Params()
	assert.True(t, domain.IsValidation(err))
}

func TestOrderFilter_DatesBecomeTimestamps(t *testing.T) {
	p, err := domain.OrderFilter{
		UserID:    "42",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}.Params()
	require.NoError(t, err)

	v, _ := p.Get("start_date")
	assert.Equal(t, "2024-01-01T00:00:00.000Z", v)
	v, _ = p.Get("end_date")
	assert.Equal(t, "2024-01-31T00:00:00.000Z", v)
	v, _ = p.Get("user_id")
	assert.Equal(t, "42", v)
}

func TestCanonicalTimestamp(t *testing.T) {
	got, err := domain.CanonicalTimestamp("2024-03-05T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T08:30:00.000Z", got)

	got, err = domain.CanonicalTimestamp(" ")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = domain.CanonicalTimestamp("05/03/2024")
	assert.True(t, domain.IsValidation(err))
}

func TestSalesWindow_Params(t *testing.T) {
	p, err := domain.SalesWindow{StartDate: "2024-01-01"}.Params()
	require.NoError(t, err)
	assert.Equal(t, "start_date=2024-01-01", p.Values().Encode())

	_, err = domain.SalesWindow{EndDate: "yesterday"}.Params()
	assert.True(t, domain.IsValidation(err))
}
