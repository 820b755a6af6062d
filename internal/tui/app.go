// Package tui is the SSH-served dashboard: sentiment, overview,
// heatmap and calendar views over the insights service.
package tui

import (
	"context"
	"time"

	"marome-markets/internal/calendar"
	"marome-markets/internal/domain"
	"marome-markets/internal/insights"

	tea "github.com/charmbracelet/bubbletea"
)

// InsightsQuerier is the read surface the dashboard pulls from.
type InsightsQuerier interface {
	Overview(ctx context.Context) (insights.Overview, error)
	Sentiment(ctx context.Context, class domain.AssetClass) (insights.SentimentResult, error)
	Heatmap(ctx context.Context, market string) (insights.HeatmapView, error)
	Commentary(ctx context.Context) ([]string, error)
	Calendar(ctx context.Context) (calendar.Schedule, error)
}

const fetchTimeout = 10 * time.Second

type tab int

const (
	tabOverview tab = iota
	tabSentiment
	tabHeatmap
	tabCalendar
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Sentiment", "Heatmap", "Calendar"}

// Messages.
type tickMsg time.Time

type overviewMsg struct {
	overview insights.Overview
	err      error
}

type sentimentMsg struct {
	results    []classResult
	commentary []string
	err        error
}

type classResult struct {
	class  domain.AssetClass
	result insights.SentimentResult
}

type heatmapMsg struct {
	market string
	view   insights.HeatmapView
	err    error
}

type calendarMsg struct {
	schedule calendar.Schedule
	err      error
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the root bubbletea model for one SSH session.
type Model struct {
	insights InsightsQuerier
	username string

	active        tab
	width, height int

	overview    insights.Overview
	overviewErr error

	sentiments   []classResult
	commentary   []string
	sentimentErr error

	heatmapMarket string
	heatmap       insights.HeatmapView
	heatmapErr    error

	schedule    calendar.Schedule
	calendarErr error

	loading bool
}

func NewModel(insights InsightsQuerier, username string) *Model {
	return &Model{
		insights:      insights,
		username:      username,
		heatmapMarket: "crypto",
		loading:       true,
	}
}

// SetSize records the terminal dimensions before the program starts.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshActive(), tickCmd())
}

func (m *Model) refreshActive() tea.Cmd {
	m.loading = true
	switch m.active {
	case tabOverview:
		return m.fetchOverview()
	case tabSentiment:
		return m.fetchSentiments()
	case tabHeatmap:
		return m.fetchHeatmap(m.heatmapMarket)
	case tabCalendar:
		return m.fetchCalendar()
	}
	return nil
}

func (m *Model) fetchOverview() tea.Cmd {
	svc := m.insights
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		overview, err := svc.Overview(ctx)
		return overviewMsg{overview: overview, err: err}
	}
}

func (m *Model) fetchSentiments() tea.Cmd {
	svc := m.insights
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var msg sentimentMsg
		for _, class := range domain.AssetClasses {
			result, err := svc.Sentiment(ctx, class)
			if err != nil {
				msg.err = err
				continue
			}
			msg.results = append(msg.results, classResult{class: class, result: result})
		}
		if lines, err := svc.Commentary(ctx); err == nil {
			msg.commentary = lines
		}
		return msg
	}
}

func (m *Model) fetchHeatmap(market string) tea.Cmd {
	svc := m.insights
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		view, err := svc.Heatmap(ctx, market)
		return heatmapMsg{market: market, view: view, err: err}
	}
}

func (m *Model) fetchCalendar() tea.Cmd {
	svc := m.insights
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		schedule, err := svc.Calendar(ctx)
		return calendarMsg{schedule: schedule, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.active = (m.active + 1) % tabCount
			return m, m.refreshActive()
		case "shift+tab", "left", "h":
			m.active = (m.active + tabCount - 1) % tabCount
			return m, m.refreshActive()
		case "1", "2", "3", "4":
			m.active = tab(msg.String()[0] - '1')
			return m, m.refreshActive()
		case "m":
			if m.active == tabHeatmap {
				if m.heatmapMarket == "crypto" {
					m.heatmapMarket = "forex"
				} else {
					m.heatmapMarket = "crypto"
				}
				return m, m.refreshActive()
			}
		case "r":
			return m, m.refreshActive()
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.refreshActive(), tickCmd())

	case overviewMsg:
		m.loading = false
		m.overview, m.overviewErr = msg.overview, msg.err
		return m, nil

	case sentimentMsg:
		m.loading = false
		m.sentiments, m.commentary, m.sentimentErr = msg.results, msg.commentary, msg.err
		return m, nil

	case heatmapMsg:
		m.loading = false
		// A stale fetch for the other market can land after a toggle.
		if msg.market == m.heatmapMarket {
			m.heatmap, m.heatmapErr = msg.view, msg.err
		}
		return m, nil

	case calendarMsg:
		m.loading = false
		m.schedule, m.calendarErr = msg.schedule, msg.err
		return m, nil
	}

	return m, nil
}
