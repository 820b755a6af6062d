package advisor

import (
	"strings"
	"testing"

	"marome-markets/internal/domain"
	"marome-markets/internal/insights"
)

func TestBuildSystemPromptContainsPhilosophy(t *testing.T) {
	prompt := BuildSystemPrompt("some context")
	if !strings.Contains(prompt, "market sentiment advisor") {
		t.Fatal("expected advisor philosophy in prompt")
	}
	if !strings.Contains(prompt, "Sentiment Framework") {
		t.Fatal("expected sentiment framework in prompt")
	}
	if !strings.Contains(prompt, "LIVE MARKET DATA") {
		t.Fatal("expected market data header in prompt")
	}
	if !strings.Contains(prompt, "some context") {
		t.Fatal("expected market context in prompt")
	}
}

func TestFormatMarketContextWithSummaryAndSentiment(t *testing.T) {
	summary := []string{"Markets are broadly bullish today with strong momentum across asset classes."}
	sentiments := []ClassSentiment{
		{
			Class: domain.ClassCrypto,
			Result: insights.SentimentResult{
				Available:     true,
				Score:         75,
				Bucket:        insights.BucketBullish,
				PositiveCount: 6,
				TotalCount:    8,
				TopPerformers: []insights.RankedAsset{{Name: "Bitcoin", Display: "4.2%"}},
				Laggards:      []insights.RankedAsset{{Name: "Cardano", Display: "-1.1%"}},
			},
		},
	}

	ctx := FormatMarketContext(summary, sentiments)
	if !strings.Contains(ctx, "broadly bullish") {
		t.Fatal("expected summary line in context")
	}
	if !strings.Contains(ctx, "crypto: 75/100 (BULLISH), 6 of 8 assets rising") {
		t.Fatal("expected score line in context")
	}
	if !strings.Contains(ctx, "Leaders: Bitcoin (4.2%)") {
		t.Fatal("expected leaders in context")
	}
	if !strings.Contains(ctx, "Laggards: Cardano (-1.1%)") {
		t.Fatal("expected laggards in context")
	}
}

func TestFormatMarketContextEmpty(t *testing.T) {
	ctx := FormatMarketContext(nil, nil)
	if ctx != "No market data currently available." {
		t.Fatalf("expected fallback text, got: %s", ctx)
	}
}

func TestFormatMarketContextSentimentOnly(t *testing.T) {
	sentiments := []ClassSentiment{
		{Class: domain.ClassForex, Result: insights.SentimentResult{Available: true, Score: 40, Bucket: insights.BucketNeutral, PositiveCount: 2, TotalCount: 5}},
	}
	ctx := FormatMarketContext(nil, sentiments)
	if !strings.Contains(ctx, "forex: 40/100 (NEUTRAL)") {
		t.Fatal("expected forex score")
	}
	if strings.Contains(ctx, "Market Summary") {
		t.Fatal("should not contain summary section when no summary lines")
	}
}
