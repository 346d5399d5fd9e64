package domain_test

import (
	"testing"

	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPager_StepNeverNegative(t *testing.T) {
	p := domain.NewPager(10)
	p.Step(-1)
	assert.Equal(t, 0, p.Offset)

	p.Step(1)
	p.Step(1)
	assert.Equal(t, 20, p.Offset)

	p.Step(-1)
	assert.Equal(t, 10, p.Offset)
}

func TestPager_StepClampsDirection(t *testing.T) {
	p := domain.NewPager(10)
	p.Step(5)
	assert.Equal(t, 10, p.Offset)
	p.Step(-7)
	assert.Equal(t, 0, p.Offset)
}

func TestPager_SeekRoundsToPageBoundary(t *testing.T) {
	p := domain.NewPager(25)
	p.Seek(60)
	assert.Equal(t, 50, p.Offset)

	p.Seek(-3)
	assert.Equal(t, 0, p.Offset)

	p.SeekPage(3)
	assert.Equal(t, 50, p.Offset)
}

func TestPager_SetLimitResetsOffset(t *testing.T) {
	p := domain.NewPager(10)
	p.Seek(30)
	p.SetLimit(50)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestNewPager_DefaultLimit(t *testing.T) {
	assert.Equal(t, domain.DefaultPageSize, domain.NewPager(0).Limit)
}

func TestPaginate_LastPartialPage(t *testing.T) {
	pg := domain.Paginate(domain.Pager{Limit: 10, Offset: 20}, 23)

	assert.Equal(t, "Showing 21 - 23 of 23", pg.Summary())
	assert.True(t, pg.HasPrev)
	assert.False(t, pg.HasNext)
}

func TestPaginate_Empty(t *testing.T) {
	pg := domain.Paginate(domain.Pager{Limit: 10}, 0)

	assert.Equal(t, "Showing 0 - 0 of 0", pg.Summary())
	assert.False(t, pg.HasPrev)
	assert.False(t, pg.HasNext)
}

func TestPaginate_Controls(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		total    int
		wantPrev bool
		wantNext bool
	}{
		{"first of many", 0, 35, false, true},
		{"middle", 10, 35, true, true},
		{"exact end", 20, 30, true, false},
		{"single page", 0, 7, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := domain.Paginate(domain.Pager{Limit: 10, Offset: tt.offset}, tt.total)
			assert.Equal(t, tt.wantPrev, pg.HasPrev)
			assert.Equal(t, tt.wantNext, pg.HasNext)
		})
	}
}
