package insights

import (
	"strings"
	"testing"

	"marome-markets/internal/domain"
)

func quote(name, change string) domain.Quote {
	return domain.Quote{Name: name, Change: domain.NewRawValue(change)}
}

func pct(v float64) *float64 { return &v }

func TestClassAverageUnknownsDiluteTheMean(t *testing.T) {
	quotes := []domain.Quote{
		quote("A", "+4.00%"),
		{Name: "B"},
		quote("C", "junk"),
		quote("D", "+2.00%"),
	}
	// Unknowns contribute zero but stay in the denominator: (4+0+0+2)/4.
	if got := ClassAverage(quotes); got != 1.5 {
		t.Fatalf("ClassAverage = %v, want 1.5", got)
	}
	if got := ClassAverage(nil); got != 0 {
		t.Fatalf("ClassAverage(nil) = %v, want 0", got)
	}
}

func TestMarketSummaryBullishBoard(t *testing.T) {
	in := SummaryInput{
		Indices:     []domain.Quote{quote("SPX", "+1.00%")},
		Forex:       []domain.Quote{quote("EUR/USD", "+0.40%")},
		Crypto:      []domain.Quote{quote("BTC", "+3.00%")},
		Commodities: []domain.Quote{quote("Gold", "+1.50%")},
	}
	lines := MarketSummary(in)
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "broad-based strength") {
		t.Fatalf("overall line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Equity markets are rallying") {
		t.Fatalf("equity line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "surging higher") {
		t.Fatalf("crypto line = %q", lines[2])
	}
	if !strings.Contains(lines[3], "Dollar is weakening") {
		t.Fatalf("forex line = %q", lines[3])
	}
	if !strings.Contains(lines[4], "Commodity markets are rallying") {
		t.Fatalf("commodity line = %q", lines[4])
	}
}

func TestMarketSummaryQuietBoardSkipsForexAndCommodities(t *testing.T) {
	in := SummaryInput{
		Indices:     []domain.Quote{quote("SPX", "+0.10%")},
		Forex:       []domain.Quote{quote("EUR/USD", "+0.10%")},
		Crypto:      []domain.Quote{quote("BTC", "-0.50%")},
		Commodities: []domain.Quote{quote("Gold", "+0.20%")},
	}
	lines := MarketSummary(in)
	// Forex and commodities stay quiet inside their bands.
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Markets are mixed") {
		t.Fatalf("overall line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "consolidating") {
		t.Fatalf("equity line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "range-bound") {
		t.Fatalf("crypto line = %q", lines[2])
	}
}

func TestMarketSummaryDollarStrength(t *testing.T) {
	in := SummaryInput{
		Forex: []domain.Quote{quote("EUR/USD", "-0.80%")},
	}
	lines := MarketSummary(in)
	var found bool
	for _, l := range lines {
		if strings.Contains(l, "Dollar is strengthening") {
			found = true
		}
	}
	if !found {
		t.Fatalf("a falling forex basket should read as dollar strength: %v", lines)
	}
}

func TestCryptoCommentaryBitcoinRules(t *testing.T) {
	cases := []struct {
		name string
		btc  domain.TimeframeChanges
		want string
	}{
		{"short term weakness", domain.TimeframeChanges{H1: pct(-0.5), H4: pct(-1), D1: pct(1), W1: pct(2)}, "short-term weakness"},
		{"short term momentum", domain.TimeframeChanges{H1: pct(0.5), H4: pct(1), D1: pct(-5), W1: pct(10)}, "strong short-term momentum"},
		{"daily pressure", domain.TimeframeChanges{H1: pct(0.5), H4: pct(-1), D1: pct(-3), W1: pct(1)}, "significant daily pressure"},
		{"weekly momentum", domain.TimeframeChanges{H1: pct(0.5), H4: pct(-1), D1: pct(1), W1: pct(6)}, "strong weekly bullish momentum"},
		{"range bound", domain.TimeframeChanges{H1: pct(0.5), H4: pct(-1), D1: pct(1), W1: pct(2)}, "range-bound"},
	}
	for _, c := range cases {
		lines := CryptoCommentary(domain.HeatmapData{"BTC": c.btc})
		if len(lines) != 2 {
			t.Fatalf("%s: got %d lines, want BTC line plus overall line: %v", c.name, len(lines), lines)
		}
		if !strings.Contains(lines[0], c.want) {
			t.Fatalf("%s: line = %q, want mention of %q", c.name, lines[0], c.want)
		}
	}
}

func TestCryptoCommentaryEthereumComparesAgainstBitcoin(t *testing.T) {
	data := domain.HeatmapData{
		"BTC": {H1: pct(0.5), H4: pct(1), D1: pct(1), W1: pct(2)},
		"ETH": {D1: pct(2), W1: pct(4)},
	}
	lines := CryptoCommentary(data)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
	}
	if !strings.Contains(lines[1], "outperforms Bitcoin") {
		t.Fatalf("eth line = %q", lines[1])
	}
}

func TestCryptoCommentaryAltcoinPullback(t *testing.T) {
	data := domain.HeatmapData{
		"SOL":  {D1: pct(-3)},
		"ADA":  {D1: pct(-2.5)},
		"XRP":  {D1: pct(-4)},
		"DOGE": {D1: pct(-2.1)},
		"AVAX": {D1: pct(5)},
	}
	lines := CryptoCommentary(data)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want altcoin line plus overall line: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "deeper pullbacks") {
		t.Fatalf("altcoin line = %q", lines[0])
	}
}

func TestCryptoCommentaryOverallAlwaysPresent(t *testing.T) {
	lines := CryptoCommentary(domain.HeatmapData{})
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want just the overall line: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Overall sentiment remains cautious") {
		t.Fatalf("overall line = %q", lines[0])
	}
}
