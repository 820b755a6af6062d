package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Bucket is a sentiment band derived from the 0-100 score.
type Bucket string

const (
	BucketVeryBullish Bucket = "VERY_BULLISH"
	BucketBullish     Bucket = "BULLISH"
	BucketNeutral     Bucket = "NEUTRAL"
	BucketBearish     Bucket = "BEARISH"
	BucketVeryBearish Bucket = "VERY_BEARISH"
)

// Label returns the human form, e.g. "VERY BULLISH".
func (b Bucket) Label() string {
	switch b {
	case BucketVeryBullish:
		return "VERY BULLISH"
	case BucketBullish:
		return "BULLISH"
	case BucketNeutral:
		return "NEUTRAL"
	case BucketBearish:
		return "BEARISH"
	case BucketVeryBearish:
		return "VERY BEARISH"
	}
	return string(b)
}

// CSSClass returns the style hook used by web frontends.
func (b Bucket) CSSClass() string {
	switch b {
	case BucketVeryBullish:
		return "very-bullish"
	case BucketBullish:
		return "bullish"
	case BucketNeutral:
		return "neutral"
	case BucketBearish:
		return "bearish"
	case BucketVeryBearish:
		return "very-bearish"
	}
	return "neutral"
}

// BucketForScore maps a score to its band. Bands are inclusive at the
// lower edge: 80 is already VERY_BULLISH, 20 is already BEARISH.
func BucketForScore(score int) Bucket {
	switch {
	case score >= 80:
		return BucketVeryBullish
	case score >= 60:
		return BucketBullish
	case score >= 40:
		return BucketNeutral
	case score >= 20:
		return BucketBearish
	default:
		return BucketVeryBearish
	}
}

// ScoredEntry is one asset fed into the scorer.
type ScoredEntry struct {
	Name    string
	Change  NormalizedChange
	Display string
}

// RankedAsset is an asset placed on a top-performers or laggards list.
type RankedAsset struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// SentimentResult is the full output of scoring one asset class.
type SentimentResult struct {
	Available     bool          `json:"available"`
	Score         int           `json:"score"`
	Bucket        Bucket        `json:"bucket"`
	PositiveCount int           `json:"positive_count"`
	TotalCount    int           `json:"total_count"`
	TopPerformers []RankedAsset `json:"top_performers"`
	Laggards      []RankedAsset `json:"laggards"`
	Narrative     string        `json:"narrative"`
}

// ScoreSentiment scores one asset class. assetType is the singular label
// used in the narrative ("Crypto", "Index", "Commodity").
//
// The score is the share of strictly positive assets out of all assets,
// unknown changes included, rounded to the nearest integer. A flat or
// unknown asset therefore drags the score down the same way a loss does.
func ScoreSentiment(assetType string, entries []ScoredEntry) SentimentResult {
	if len(entries) == 0 {
		return SentimentResult{}
	}

	ranked := make([]RankedAsset, 0, len(entries))
	for _, e := range entries {
		if !e.Change.Known {
			continue
		}
		ranked = append(ranked, RankedAsset{Name: e.Name, Value: e.Change.Value, Display: e.Display})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Value > ranked[j].Value })

	var positives, negatives []RankedAsset
	for _, r := range ranked {
		switch {
		case r.Value > 0:
			positives = append(positives, r)
		case r.Value < 0:
			negatives = append(negatives, r)
		}
	}

	total := len(entries)
	score := int(math.Round(float64(len(positives)) / float64(total) * 100))
	bucket := BucketForScore(score)

	top := positives
	if len(top) > 3 {
		top = top[:3]
	}
	// Negatives are sorted best-to-worst, so the worst sit at the tail.
	// Take the last three, then reverse so the worst leads the list.
	tail := negatives
	if len(tail) > 3 {
		tail = tail[len(tail)-3:]
	}
	laggards := make([]RankedAsset, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		laggards = append(laggards, tail[i])
	}

	var leader *RankedAsset
	if len(ranked) > 0 {
		leader = &ranked[0]
	}

	return SentimentResult{
		Available:     true,
		Score:         score,
		Bucket:        bucket,
		PositiveCount: len(positives),
		TotalCount:    total,
		TopPerformers: top,
		Laggards:      laggards,
		Narrative:     narrative(assetType, score, len(positives), total, leader),
	}
}

func narrative(assetType string, score, positive, total int, leader *RankedAsset) string {
	kind := strings.ToLower(assetType)
	if leader == nil {
		// Every change came back unknown; there is no leader to cite.
		return fmt.Sprintf("Mixed signals in %s markets. Traders are cautious as sentiment remains balanced between bulls and bears.", kind)
	}
	switch {
	case score == 100:
		return fmt.Sprintf("All %s assets are rising today. Strong across-the-board buying pressure with %s leading at %s.", kind, leader.Name, leader.Display)
	case score == 0:
		return fmt.Sprintf("All %s assets are declining today. Widespread selling pressure with %s showing the smallest loss at %s.", kind, leader.Name, leader.Display)
	case score >= 80:
		return fmt.Sprintf("Extremely strong momentum in %s markets with %s leading at %s. High risk appetite detected.", kind, leader.Name, leader.Display)
	case score >= 60:
		return fmt.Sprintf("Positive sentiment dominates %s markets. %d out of %d assets are rising with healthy buying pressure.", kind, positive, total)
	case score >= 40:
		return fmt.Sprintf("Mixed signals in %s markets. Traders are cautious as sentiment remains balanced between bulls and bears.", kind)
	case score >= 20:
		return fmt.Sprintf("Selling pressure evident in %s markets. Risk-off sentiment as %d out of %d assets decline.", kind, total-positive, total)
	default:
		return fmt.Sprintf("Severe weakness across %s markets. Widespread selling with only %d out of %d assets holding gains.", kind, positive, total)
	}
}
