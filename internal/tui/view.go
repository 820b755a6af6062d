package tui

import (
	"fmt"
	"strings"

	"marome-markets/internal/insights"

	"github.com/charmbracelet/lipgloss"
)

// Styles.
var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	gainStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	bucketStyles = map[insights.Bucket]lipgloss.Style{
		insights.BucketVeryBullish: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		insights.BucketBullish:     gainStyle,
		insights.BucketNeutral:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		insights.BucketBearish:     lossStyle,
		insights.BucketVeryBearish: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)

func changeStyle(positive bool) lipgloss.Style {
	if positive {
		return gainStyle
	}
	return lossStyle
}

func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("marome markets"))
	if m.username != "" {
		sb.WriteString(dimStyle.Render("  ~ " + m.username))
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	if m.loading {
		sb.WriteString(dimStyle.Render("loading..."))
		sb.WriteString("\n\n")
	}

	switch m.active {
	case tabOverview:
		sb.WriteString(m.renderOverview())
	case tabSentiment:
		sb.WriteString(m.renderSentiment())
	case tabHeatmap:
		sb.WriteString(m.renderHeatmap())
	case tabCalendar:
		sb.WriteString(m.renderCalendar())
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("tab/arrows switch view  m toggle market  r refresh  q quit"))
	return sb.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, int(tabCount))
	for i, name := range tabNames {
		if tab(i) == m.active {
			parts = append(parts, tabActiveStyle.Render(name))
		} else {
			parts = append(parts, tabInactiveStyle.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderOverview() string {
	if m.overviewErr != nil {
		return errorStyle.Render("overview unavailable: " + m.overviewErr.Error())
	}

	var sb strings.Builder
	for _, line := range m.overview.Summary {
		sb.WriteString("  " + line + "\n")
	}
	if len(m.overview.Summary) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(headerStyle.Render("  24h by class") + "\n")
	for _, card := range m.overview.Comparison {
		sb.WriteString(fmt.Sprintf("  %-18s %s\n", card.Name, changeStyle(card.Positive).Render(card.Display)))
	}

	if len(m.overview.Trends) > 0 {
		sb.WriteString("\n" + headerStyle.Render("  Trends") + "\n")
		for _, trend := range m.overview.Trends {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", trend.Title, trend.Description))
		}
	}

	if len(m.overview.Volatility) > 0 {
		sb.WriteString("\n" + headerStyle.Render("  Volatility") + "\n")
		for _, vol := range m.overview.Volatility {
			sb.WriteString(fmt.Sprintf("  %-18s %s\n", vol.Title, vol.Description))
		}
	}

	if len(m.overview.Movers) > 0 {
		sb.WriteString("\n" + headerStyle.Render("  Top movers") + "\n")
		for _, mover := range m.overview.Movers {
			sb.WriteString(fmt.Sprintf("  %-20s %-12s %s\n",
				mover.Name, dimStyle.Render(mover.Type), changeStyle(mover.Positive).Render(mover.Performance)))
		}
	}

	return sb.String()
}

func (m *Model) renderSentiment() string {
	if m.sentimentErr != nil && len(m.sentiments) == 0 {
		return errorStyle.Render("sentiment unavailable: " + m.sentimentErr.Error())
	}

	var sb strings.Builder
	for _, cr := range m.sentiments {
		sb.WriteString(renderClassSentiment(string(cr.class), cr.result))
		sb.WriteString("\n")
	}

	if len(m.commentary) > 0 {
		sb.WriteString(headerStyle.Render("  Crypto commentary") + "\n")
		for _, line := range m.commentary {
			sb.WriteString("  " + line + "\n")
		}
	}

	return sb.String()
}

func renderClassSentiment(class string, result insights.SentimentResult) string {
	var sb strings.Builder
	if !result.Available {
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", strings.ToUpper(class), dimStyle.Render("no data")))
		return sb.String()
	}

	bucketStyle, ok := bucketStyles[result.Bucket]
	if !ok {
		bucketStyle = dimStyle
	}
	sb.WriteString(fmt.Sprintf("  %-12s %3d/100 %s  %s\n",
		strings.ToUpper(class), result.Score,
		bucketStyle.Render(result.Bucket.Label()),
		dimStyle.Render(fmt.Sprintf("%d of %d rising", result.PositiveCount, result.TotalCount))))

	if len(result.TopPerformers) > 0 {
		parts := make([]string, 0, len(result.TopPerformers))
		for _, a := range result.TopPerformers {
			parts = append(parts, fmt.Sprintf("%s %s", a.Name, gainStyle.Render(a.Display)))
		}
		sb.WriteString("    up: " + strings.Join(parts, "  ") + "\n")
	}
	if len(result.Laggards) > 0 {
		parts := make([]string, 0, len(result.Laggards))
		for _, a := range result.Laggards {
			parts = append(parts, fmt.Sprintf("%s %s", a.Name, lossStyle.Render(a.Display)))
		}
		sb.WriteString("    down: " + strings.Join(parts, "  ") + "\n")
	}
	sb.WriteString("    " + dimStyle.Render(result.Narrative) + "\n")
	return sb.String()
}

func (m *Model) renderHeatmap() string {
	if m.heatmapErr != nil {
		return errorStyle.Render("heatmap unavailable: " + m.heatmapErr.Error())
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("  "+strings.ToUpper(m.heatmapMarket)+" heatmap") + "\n")

	sb.WriteString("  " + fmt.Sprintf("%-12s", ""))
	for _, col := range m.heatmap.Columns {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%10s", col)))
	}
	sb.WriteString("\n")

	for _, row := range m.heatmap.Rows {
		sb.WriteString("  " + fmt.Sprintf("%-12s", row.Symbol))
		for _, cell := range row.Cells {
			display := fmt.Sprintf("%10s", cell.Display)
			switch cell.ColorClass {
			case "green-cell":
				sb.WriteString(gainStyle.Render(display))
			case "red-cell":
				sb.WriteString(lossStyle.Render(display))
			default:
				sb.WriteString(dimStyle.Render(display))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m *Model) renderCalendar() string {
	if m.calendarErr != nil {
		return errorStyle.Render("calendar unavailable: " + m.calendarErr.Error())
	}

	var sb strings.Builder
	if m.schedule.Notice != "" {
		sb.WriteString(noticeStyle.Render("  "+m.schedule.Notice) + "\n\n")
	}
	if len(m.schedule.Days) == 0 {
		sb.WriteString(dimStyle.Render("  no upcoming events") + "\n")
		return sb.String()
	}

	for _, day := range m.schedule.Days {
		sb.WriteString(headerStyle.Render("  "+day.Label) + "\n")
		for _, ev := range day.Events {
			sb.WriteString(fmt.Sprintf("    %-7s %-4s %-9s %s\n",
				ev.Time, ev.Country, ev.Importance, ev.Event))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
