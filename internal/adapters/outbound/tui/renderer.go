package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
	"github.com/orderdesk/orderdesk/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	statusColors = map[domain.OrderStatus]lipgloss.Color{
		domain.StatusPending:   warning,
		domain.StatusPaid:      info,
		domain.StatusShipped:   accent,
		domain.StatusDelivered: success,
		domain.StatusCancelled: danger,
	}

	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	errorStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle   = lipgloss.NewStyle().Foreground(dim)
	disabledBtn  = lipgloss.NewStyle().Foreground(faint)
	enabledBtn   = lipgloss.NewStyle().Foreground(accent)
	loadingStyle = lipgloss.NewStyle().Foreground(info).Italic(true)
)

// ListView is what a list screen needs besides its rows.
type ListView struct {
	Loading    bool
	Error      string
	Pagination domain.Pagination
}

// RenderError formats a failure message the way every screen shows it.
func RenderError(msg string) string {
	return "  " + errorStyle.Render("error") + " " + msg + "\n"
}

// RenderLoading is the loading indicator.
func RenderLoading() string {
	return "  " + loadingStyle.Render("Loading...") + "\n"
}

// RenderPagination renders the footer: Previous, range, Next.
func RenderPagination(p domain.Pagination) string {
	prev := disabledBtn.Render("‹ Previous")
	if p.HasPrev {
		prev = enabledBtn.Render("‹ Previous")
	}
	next := disabledBtn.Render("Next ›")
	if p.HasNext {
		next = enabledBtn.Render("Next ›")
	}
	return fmt.Sprintf("  %s   %s   %s\n", prev, dimStyle.Render(p.Summary()), next)
}

func renderTitle(b *strings.Builder, title string) {
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")
}

func renderListChrome(b *strings.Builder, view ListView) {
	if view.Loading {
		b.WriteString(RenderLoading())
	}
	if view.Error != "" {
		b.WriteString(RenderError(view.Error))
	}
}

func statusBadge(s domain.OrderStatus) string {
	c, ok := statusColors[s]
	if !ok {
		c = fg
	}
	return lipgloss.NewStyle().Foreground(c).Render(string(s))
}

// humanize turns a Go-style column key into a header: "UnitPrice" -> "Unit Price".
func humanize(key string) string {
	return strings.Join(camelcase.Split(key), " ")
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderHealth renders the API health probe result.
func RenderHealth(baseURL, status string) string {
	mark := passStyle.Render("✓")
	if status != "ok" {
		mark = errorStyle.Render("!")
	}
	return fmt.Sprintf("  %s %s %s\n", mark, titleStyle.Render(baseURL), dimStyle.Render(status))
}
