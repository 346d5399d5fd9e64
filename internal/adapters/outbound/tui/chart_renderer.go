package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/orderdesk/orderdesk/internal/domain"
)

const (
	chartHeight   = 10
	chartMaxWidth = 60
)

var (
	blocks     = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	chartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB"))
)

// SalesView is what the analytics screen needs to render.
type SalesView struct {
	Loading bool
	Error   string
	Window  domain.SalesWindow
	Series  []domain.ChartPoint
}

// RenderSales renders the daily-sales screen: status lines, then either the
// "no data" message or the chart.
func RenderSales(v SalesView) string {
	var b strings.Builder
	renderTitle(&b, "Daily Sales")

	from, to := v.Window.StartDate, v.Window.EndDate
	if from == "" {
		from = "…"
	}
	if to == "" {
		to = "…"
	}
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%s → %s", from, to)) + "\n\n")

	if v.Loading {
		b.WriteString(RenderLoading())
	}
	if v.Error != "" {
		b.WriteString(RenderError(v.Error))
	}
	if !v.Loading && len(v.Series) == 0 {
		b.WriteString("  " + dimStyle.Render("No data for selected range.") + "\n")
		return b.String()
	}
	if len(v.Series) > 0 {
		b.WriteString(RenderChart(v.Series, chartHeight))
	}
	return b.String()
}

// RenderChart draws points as a column chart height rows tall. Longer
// series are averaged into at most chartMaxWidth columns.
func RenderChart(points []domain.ChartPoint, height int) string {
	if len(points) == 0 || height <= 0 {
		return ""
	}
	values := bucket(points, chartMaxWidth)

	top := 0.0
	total := 0.0
	for _, p := range points {
		total += p.Y
	}
	for _, v := range values {
		top = math.Max(top, v)
	}

	axisWidth := len(formatAxis(top))
	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		label := strings.Repeat(" ", axisWidth)
		switch row {
		case height - 1:
			label = fmt.Sprintf("%*s", axisWidth, formatAxis(top))
		case 0:
			label = fmt.Sprintf("%*s", axisWidth, formatAxis(0))
		}

		var line strings.Builder
		for _, v := range values {
			line.WriteRune(cell(v, top, row, height))
		}
		fmt.Fprintf(&b, "  %s %s %s\n", dimStyle.Render(label), faintStyle.Render("┤"), chartStyle.Render(line.String()))
	}

	pad := strings.Repeat(" ", axisWidth+3)
	b.WriteString("  " + pad + faintStyle.Render(strings.Repeat("─", len(values))) + "\n")
	first, last := points[0].X, points[len(points)-1].X
	gap := max(1, len(values)-len(first)-len(last))
	if len(points) == 1 {
		b.WriteString("  " + pad + dimStyle.Render(first) + "\n")
	} else {
		b.WriteString("  " + pad + dimStyle.Render(first+strings.Repeat(" ", gap)+last) + "\n")
	}
	fmt.Fprintf(&b, "\n  %s %s   %s %s\n",
		labelStyle.Render("Days:"), fmt.Sprintf("%d", len(points)),
		labelStyle.Render("Total:"), titleStyle.Render(fmt.Sprintf("$%.2f", total)))
	return b.String()
}

// cell picks the block character for value v in the given row.
func cell(v, top float64, row, height int) rune {
	if top <= 0 || v <= 0 {
		return blocks[0]
	}
	eighths := int(math.Round(v / top * float64(height*8)))
	filled := eighths - row*8
	switch {
	case filled >= 8:
		return blocks[8]
	case filled <= 0:
		return blocks[0]
	default:
		return blocks[filled]
	}
}

// bucket averages consecutive points so at most width values remain.
func bucket(points []domain.ChartPoint, width int) []float64 {
	if len(points) <= width {
		out := make([]float64, len(points))
		for i, p := range points {
			out[i] = math.Max(0, p.Y)
		}
		return out
	}
	out := make([]float64, width)
	for i := range out {
		lo := i * len(points) / width
		hi := (i + 1) * len(points) / width
		sum := 0.0
		for _, p := range points[lo:hi] {
			sum += math.Max(0, p.Y)
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

func formatAxis(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 10_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
