package domain

import (
	"encoding/json"
	"time"
)

// AssetClass identifies which market a set of quotes belongs to.
type AssetClass string

const (
	ClassIndices     AssetClass = "indices"
	ClassForex       AssetClass = "forex"
	ClassCrypto      AssetClass = "crypto"
	ClassCommodities AssetClass = "commodities"
	ClassStocks      AssetClass = "stocks"
)

// AssetClasses lists every class the insights engine scores.
var AssetClasses = []AssetClass{
	ClassIndices, ClassForex, ClassCrypto, ClassCommodities, ClassStocks,
}

func (c AssetClass) IsValid() bool {
	for _, known := range AssetClasses {
		if c == known {
			return true
		}
	}
	return false
}

// RawValue is a scalar exactly as the upstream feed sent it: a JSON number,
// a string (possibly "+1.25%"), or null. The feed is not consistent about
// which form it uses, so the raw token is kept and parsed downstream.
type RawValue struct {
	text    string
	present bool
}

// NewRawValue wraps a literal token, mainly for tests and fixtures.
func NewRawValue(text string) RawValue {
	return RawValue{text: text, present: true}
}

// Value returns the raw token and whether one was present (false for null
// or absent fields).
func (v RawValue) Value() (string, bool) {
	return v.text, v.present
}

func (v *RawValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = RawValue{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = RawValue{text: s, present: true}
		return nil
	}
	// Bare number: keep the token as written.
	*v = RawValue{text: string(data), present: true}
	return nil
}

func (v RawValue) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.text)
}

// Quote is one instrument snapshot from the upstream market-data API.
// Forex rows carry a pair instead of a symbol; either may be empty.
type Quote struct {
	Name   string   `json:"name"`
	Symbol string   `json:"symbol,omitempty"`
	Pair   string   `json:"pair,omitempty"`
	Change RawValue `json:"change"`
	Price  *float64 `json:"price,omitempty"`
}

// DisplayName prefers the pair notation when present (forex rows are keyed
// by pair upstream, everything else by name).
func (q Quote) DisplayName() string {
	if q.Pair != "" {
		return q.Pair
	}
	return q.Name
}

// Timeframes are the heatmap columns, in display order.
var Timeframes = []string{"1h", "4h", "1d", "1w"}

// TimeframeChanges holds one heatmap row. Nil means the upstream had no
// value for that window.
type TimeframeChanges struct {
	H1 *float64 `json:"1h"`
	H4 *float64 `json:"4h"`
	D1 *float64 `json:"1d"`
	W1 *float64 `json:"1w"`
}

// At returns the value for a timeframe label, nil for unknown labels.
func (t TimeframeChanges) At(tf string) *float64 {
	switch tf {
	case "1h":
		return t.H1
	case "4h":
		return t.H4
	case "1d":
		return t.D1
	case "1w":
		return t.W1
	}
	return nil
}

// HeatmapData maps symbol to its per-timeframe percent changes.
type HeatmapData map[string]TimeframeChanges

// CorrelationData is the upstream correlation payload. Assets order is
// significant: it fixes both row and column order. The matrix is assumed
// square per the upstream contract; missing keys are not defended against.
type CorrelationData struct {
	Assets []string                      `json:"assets"`
	Matrix map[string]map[string]float64 `json:"matrix"`
}

// Mover is one row of the cross-market top-movers feed. Performance is the
// display string the upstream already formatted; RawChange is numeric.
type Mover struct {
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Type        string  `json:"type"`
	Performance string  `json:"performance"`
	RawChange   float64 `json:"rawChange"`
	Trend       string  `json:"trend"`
}

// StrengthMap maps currency code to a qualitative strength status
// ("Strong", "Weak", "Neutral") computed upstream.
type StrengthMap map[string]string

// NewsArticle is one headline from the news feed. Datetime is unix seconds.
type NewsArticle struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Summary  string `json:"summary,omitempty"`
	Datetime int64  `json:"datetime"`
}

// CalendarEvent is one economic-calendar row. Actual/Forecast/Previous are
// whatever scalar the feed produced, or null.
type CalendarEvent struct {
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Country    string   `json:"country"`
	Event      string   `json:"event"`
	Importance string   `json:"importance"`
	Actual     RawValue `json:"actual"`
	Forecast   RawValue `json:"forecast"`
	Previous   RawValue `json:"previous"`
}

// SentimentSnapshot is one persisted sentiment computation, used for the
// history endpoint and the Telegram/SSH surfaces.
type SentimentSnapshot struct {
	ID            int64      `json:"id"`
	Class         AssetClass `json:"class"`
	Score         int        `json:"score"`
	Bucket        string     `json:"bucket"`
	PositiveCount int        `json:"positive_count"`
	TotalCount    int        `json:"total_count"`
	Narrative     string     `json:"narrative"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ConversationMessage is one chat turn between a dashboard visitor and the
// assistant.
type ConversationMessage struct {
	Role      string
	Content   string
	CreatedAt time.Time
}
