package insights

import (
	"fmt"
	"strings"

	"marome-markets/internal/domain"
)

// ComparisonCard summarizes one asset class's average 24h move.
type ComparisonCard struct {
	Name     string  `json:"name"`
	Average  float64 `json:"average"`
	Display  string  `json:"display"`
	Positive bool    `json:"positive"`
}

// MarketComparison builds the four class cards in fixed order: indices,
// crypto, forex, commodities. The display carries one arrow, doubled
// when the average move exceeds 2% either way. Zero sits on the
// positive side.
func MarketComparison(in SummaryInput) []ComparisonCard {
	classes := []struct {
		name string
		avg  float64
	}{
		{"Equity Indices", ClassAverage(in.Indices)},
		{"Cryptocurrencies", ClassAverage(in.Crypto)},
		{"Forex Pairs", ClassAverage(in.Forex)},
		{"Commodities", ClassAverage(in.Commodities)},
	}

	cards := make([]ComparisonCard, 0, len(classes))
	for _, c := range classes {
		positive := c.avg >= 0
		arrow := "▼"
		if positive {
			arrow = "▲"
		}
		if abs(c.avg) > 2 {
			arrow += arrow
		}
		sign := ""
		if positive {
			sign = "+"
		}
		cards = append(cards, ComparisonCard{
			Name:     c.name,
			Average:  c.avg,
			Display:  fmt.Sprintf("%s%.2f%% %s", sign, c.avg, arrow),
			Positive: positive,
		})
	}
	return cards
}

// TrendLine is one titled trend summary.
type TrendLine struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func trendLabel(change, threshold float64) string {
	switch {
	case change > threshold:
		return "Bullish ▲"
	case change < -threshold:
		return "Bearish ▼"
	default:
		return "Neutral"
	}
}

// TrendAnalysis labels the first three forex pairs at a 0.5% threshold
// and every commodity at 1%, joining each group with bullet separators.
// A class with no quotes emits no line.
func TrendAnalysis(forex, commodities []domain.Quote) []TrendLine {
	var trends []TrendLine

	if len(forex) > 0 {
		pairs := forex
		if len(pairs) > 3 {
			pairs = pairs[:3]
		}
		parts := make([]string, 0, len(pairs))
		for _, p := range pairs {
			change := ParseChange(p.Change)
			parts = append(parts, fmt.Sprintf("%s: %s", p.DisplayName(), trendLabel(change.Value, 0.5)))
		}
		trends = append(trends, TrendLine{Title: "Forex Trends", Description: strings.Join(parts, " • ")})
	}

	if len(commodities) > 0 {
		parts := make([]string, 0, len(commodities))
		for _, c := range commodities {
			change := ParseChange(c.Change)
			parts = append(parts, fmt.Sprintf("%s: %s", c.DisplayName(), trendLabel(change.Value, 1)))
		}
		trends = append(trends, TrendLine{Title: "Commodity Trends", Description: strings.Join(parts, " • ")})
	}

	return trends
}

// VolatilityInsight is one class's volatility reading.
type VolatilityInsight struct {
	Title       string `json:"title"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

func volatilityLevel(avg, high, low float64) string {
	switch {
	case avg > high:
		return "High"
	case avg < low:
		return "Low"
	default:
		return "Moderate"
	}
}

// VolatilityInsights averages the absolute change per class. Crypto is
// judged against 3%/1% bands, forex against 0.5%/0.2%.
func VolatilityInsights(crypto, forex []domain.Quote) []VolatilityInsight {
	var insights []VolatilityInsight

	if len(crypto) > 0 {
		avg := averageAbsChange(crypto)
		level := volatilityLevel(avg, 3, 1)
		insights = append(insights, VolatilityInsight{
			Title:       "Crypto Volatility",
			Level:       level,
			Description: fmt.Sprintf("%s (Avg: %.2f%%)", level, avg),
		})
	}

	if len(forex) > 0 {
		avg := averageAbsChange(forex)
		level := volatilityLevel(avg, 0.5, 0.2)
		insights = append(insights, VolatilityInsight{
			Title:       "Forex Volatility",
			Level:       level,
			Description: fmt.Sprintf("%s (Avg: %.2f%%)", level, avg),
		})
	}

	return insights
}

func averageAbsChange(quotes []domain.Quote) float64 {
	var sum float64
	for _, q := range quotes {
		if c := ParseChange(q.Change); c.Known {
			sum += abs(c.Value)
		}
	}
	return sum / float64(len(quotes))
}

// MoverCard is one formatted top-movers entry.
type MoverCard struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Performance string `json:"performance"`
	Positive    bool   `json:"positive"`
}

// DefaultMoverLimit caps the movers list on the overview page.
const DefaultMoverLimit = 8

// TopMovers formats up to limit movers in the provider's order; a
// non-positive limit falls back to the default cap. Zero raw change
// counts as positive.
func TopMovers(movers []domain.Mover, limit int) []MoverCard {
	if limit <= 0 {
		limit = DefaultMoverLimit
	}
	if len(movers) > limit {
		movers = movers[:limit]
	}
	cards := make([]MoverCard, 0, len(movers))
	for _, m := range movers {
		cards = append(cards, MoverCard{
			Name:        m.Name,
			Type:        m.Type,
			Performance: m.Performance,
			Positive:    m.RawChange >= 0,
		})
	}
	return cards
}
