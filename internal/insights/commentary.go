package insights

import "marome-markets/internal/domain"

// narrativeRule pairs a predicate with the sentence it emits. Rules are
// evaluated in order and the first match wins.
type narrativeRule struct {
	when func() bool
	text string
}

func firstMatch(rules []narrativeRule) string {
	for _, r := range rules {
		if r.when() {
			return r.text
		}
	}
	return ""
}

// ClassAverage averages the parsed change of every quote. Unknown changes
// count as zero and stay in the denominator, so a class full of gaps
// averages flat rather than dropping out.
func ClassAverage(quotes []domain.Quote) float64 {
	if len(quotes) == 0 {
		return 0
	}
	var sum float64
	for _, q := range quotes {
		if c := ParseChange(q.Change); c.Known {
			sum += c.Value
		}
	}
	return sum / float64(len(quotes))
}

// SummaryInput carries the per-class quote lists the summary and
// comparison builders work from.
type SummaryInput struct {
	Indices     []domain.Quote
	Forex       []domain.Quote
	Crypto      []domain.Quote
	Commodities []domain.Quote
}

// MarketSummary produces the cross-market bullet lines. The overall line
// deliberately leaves forex out of the mean since its sign is read as a
// USD-inverse signal. Forex and commodity lines are only emitted when
// their averages clear the thresholds.
func MarketSummary(in SummaryInput) []string {
	indicesAvg := ClassAverage(in.Indices)
	forexAvg := ClassAverage(in.Forex)
	cryptoAvg := ClassAverage(in.Crypto)
	commoditiesAvg := ClassAverage(in.Commodities)

	overallAvg := (indicesAvg + cryptoAvg + commoditiesAvg) / 3

	summary := make([]string, 0, 5)

	summary = append(summary, firstMatch([]narrativeRule{
		{func() bool { return overallAvg > 1 }, "Markets are showing broad-based strength with positive momentum across multiple asset classes."},
		{func() bool { return overallAvg < -1 }, "Markets face selling pressure with widespread declines across major assets."},
		{func() bool { return true }, "Markets are mixed with no clear directional bias as different sectors show diverging performance."},
	}))

	summary = append(summary, firstMatch([]narrativeRule{
		{func() bool { return indicesAvg > 0.5 }, "Equity markets are rallying, with major indices posting solid gains."},
		{func() bool { return indicesAvg < -0.5 }, "Equity markets are under pressure as risk appetite weakens."},
		{func() bool { return true }, "Equity indices are consolidating near current levels with light trading activity."},
	}))

	summary = append(summary, firstMatch([]narrativeRule{
		{func() bool { return cryptoAvg > 2 }, "Cryptocurrencies are surging higher, led by Bitcoin and major altcoins."},
		{func() bool { return cryptoAvg < -2 }, "Cryptocurrencies face sharp selling as traders de-risk positions."},
		{func() bool { return true }, "Cryptocurrency markets remain range-bound with selective buying interest."},
	}))

	// A falling forex basket means the dollar is gaining, so the signs
	// here read inverted.
	if line := firstMatch([]narrativeRule{
		{func() bool { return forexAvg < -0.3 }, "The US Dollar is strengthening against major currencies, pressuring risk assets."},
		{func() bool { return forexAvg > 0.3 }, "The US Dollar is weakening, providing tailwinds for commodities and emerging markets."},
	}); line != "" {
		summary = append(summary, line)
	}

	if line := firstMatch([]narrativeRule{
		{func() bool { return commoditiesAvg > 1 }, "Commodity markets are rallying on strong demand and supply concerns."},
		{func() bool { return commoditiesAvg < -1 }, "Commodities are declining amid demand weakness and profit-taking."},
	}); line != "" {
		summary = append(summary, line)
	}

	return summary
}

// CryptoCommentary narrates a crypto heatmap: one line for Bitcoin, one
// for Ethereum, one for the altcoin basket, one for the whole board.
// Missing coins skip their line; missing timeframes read as zero.
func CryptoCommentary(data domain.HeatmapData) []string {
	commentary := make([]string, 0, 4)

	btc, hasBTC := data["BTC"]
	btc1d := tf(btc.D1)
	if hasBTC {
		btc1h, btc4h, btc1w := tf(btc.H1), tf(btc.H4), tf(btc.W1)
		commentary = append(commentary, firstMatch([]narrativeRule{
			{func() bool { return btc1h < 0 && btc4h < 0 }, "Bitcoin shows short-term weakness on the 1H and 4H charts as momentum cools near resistance."},
			{func() bool { return btc1h > 0 && btc4h > 0 }, "Bitcoin demonstrates strong short-term momentum with positive performance across 1H and 4H timeframes."},
			{func() bool { return btc1d < -2 }, "Bitcoin faces significant daily pressure with a decline exceeding 2%."},
			{func() bool { return btc1w > 5 }, "Bitcoin maintains strong weekly bullish momentum with gains above 5%."},
			{func() bool { return true }, "Bitcoin remains range-bound with mixed signals across timeframes."},
		}))
	}

	if eth, ok := data["ETH"]; ok {
		eth1d, eth1w := tf(eth.D1), tf(eth.W1)
		commentary = append(commentary, firstMatch([]narrativeRule{
			{func() bool { return abs(eth1d) < 1 && abs(eth1w) < 3 }, "Ethereum remains more stable with stronger performance on higher timeframes."},
			{func() bool { return eth1d > btc1d }, "Ethereum outperforms Bitcoin on the daily chart, showing relative strength."},
			{func() bool { return eth1d < -3 }, "Ethereum faces selling pressure with notable daily declines."},
			{func() bool { return true }, "Ethereum tracks broader market trends with moderate volatility."},
		}))
	}

	altcoins := []string{"SOL", "ADA", "XRP", "DOGE", "AVAX", "BNB", "LTC"}
	var altSum float64
	var altLosers, altCount int
	for _, sym := range altcoins {
		alt, ok := data[sym]
		if !ok {
			continue
		}
		d1 := tf(alt.D1)
		altSum += d1
		if d1 < -2 {
			altLosers++
		}
		altCount++
	}
	if altCount > 0 {
		avg1d := altSum / float64(altCount)
		losers := altLosers
		commentary = append(commentary, firstMatch([]narrativeRule{
			{func() bool { return losers >= 4 }, "Altcoins continue to trade with elevated volatility, with several major assets showing deeper pullbacks."},
			{func() bool { return avg1d > 2 }, "Altcoins display strong momentum with broad-based gains across the board."},
			{func() bool { return avg1d < -2 }, "Altcoins face widespread selling pressure as risk sentiment deteriorates."},
			{func() bool { return true }, "Altcoins show mixed performance with selective strength in certain tokens."},
		}))
	}

	var overall1d float64
	if len(data) > 0 {
		var sum float64
		for _, changes := range data {
			sum += tf(changes.D1)
		}
		overall1d = sum / float64(len(data))
	}
	commentary = append(commentary, firstMatch([]narrativeRule{
		{func() bool { return overall1d > 3 }, "Overall sentiment is bullish as the broader crypto market rallies strongly."},
		{func() bool { return overall1d < -3 }, "Overall sentiment remains bearish as the market faces downward pressure."},
		{func() bool { return true }, "Overall sentiment remains cautious as traders await clearer direction from broader market trends."},
	}))

	return commentary
}

func tf(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
