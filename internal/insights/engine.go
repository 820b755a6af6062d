package insights

import "marome-markets/internal/domain"

// Engine bundles the pure analysis routines behind one API. It holds no
// state and is safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func classLabel(class domain.AssetClass) string {
	switch class {
	case domain.ClassIndices:
		return "Index"
	case domain.ClassForex:
		return "Forex"
	case domain.ClassCrypto:
		return "Crypto"
	case domain.ClassCommodities:
		return "Commodity"
	case domain.ClassStocks:
		return "Stock"
	}
	return string(class)
}

// Sentiment scores one asset class's quotes.
func (e *Engine) Sentiment(class domain.AssetClass, quotes []domain.Quote) SentimentResult {
	entries := make([]ScoredEntry, 0, len(quotes))
	for _, q := range quotes {
		display := "--"
		if text, ok := q.Change.Value(); ok {
			display = text
		}
		entries = append(entries, ScoredEntry{
			Name:    q.DisplayName(),
			Change:  ParseChange(q.Change),
			Display: display,
		})
	}
	return ScoreSentiment(classLabel(class), entries)
}

// Summary produces the cross-market bullet lines.
func (e *Engine) Summary(in SummaryInput) []string {
	return MarketSummary(in)
}

// CryptoCommentary narrates a crypto heatmap.
func (e *Engine) CryptoCommentary(data domain.HeatmapData) []string {
	return CryptoCommentary(data)
}

// Correlation renders a correlation matrix for display.
func (e *Engine) Correlation(data domain.CorrelationData) CorrelationView {
	return RenderCorrelation(data)
}

// Heatmap renders a heatmap table for display.
func (e *Engine) Heatmap(data domain.HeatmapData) HeatmapView {
	return FormatHeatmap(data)
}

// Overview is the full analysis page model.
type Overview struct {
	Summary    []string            `json:"summary"`
	Comparison []ComparisonCard    `json:"comparison"`
	Trends     []TrendLine         `json:"trends"`
	Volatility []VolatilityInsight `json:"volatility"`
	Movers     []MoverCard         `json:"movers"`
}

// Overview assembles every analysis section from one set of inputs.
func (e *Engine) Overview(in SummaryInput, movers []domain.Mover) Overview {
	return Overview{
		Summary:    MarketSummary(in),
		Comparison: MarketComparison(in),
		Trends:     TrendAnalysis(in.Forex, in.Commodities),
		Volatility: VolatilityInsights(in.Crypto, in.Forex),
		Movers:     TopMovers(movers, DefaultMoverLimit),
	}
}
