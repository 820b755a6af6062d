package advisor

import (
	"fmt"
	"strings"
	"time"

	"marome-markets/internal/domain"
	"marome-markets/internal/insights"
)

const advisorPhilosophy = `You are a market sentiment advisor bot. Your role is to interpret sentiment scores and market breadth data, NOT to generate trading signals yourself.

Sentiment Framework:
- Scores run 0-100 and measure breadth: the share of assets in a class that are rising.
- 80+ is VERY BULLISH, 60+ BULLISH, 40+ NEUTRAL, 20+ BEARISH, below 20 VERY BEARISH.
- A high score with one weak leader is fragile. Breadth and leadership together tell the story.

Rules:
- Always reference specific scores and assets when making observations.
- Never fabricate data. If data is unavailable, say so.
- Express uncertainty when classes disagree.
- Sentiment measures breadth, not magnitude. A 100 score of small gains is not a rally.
- Keep responses concise and conversational.
- Do not provide financial advice disclaimers on every message. The user understands this is informational.
- When asked about an asset class, summarize: the score, the leaders, the laggards, and your interpretation.
- If a class has no data, say so honestly rather than speculating.`

func BuildSystemPrompt(marketContext string) string {
	var sb strings.Builder
	sb.WriteString(advisorPhilosophy)
	sb.WriteString("\n\n--- LIVE MARKET DATA (as of ")
	sb.WriteString(time.Now().UTC().Format(time.RFC822))
	sb.WriteString(") ---\n")
	sb.WriteString(marketContext)
	return sb.String()
}

// ClassSentiment pairs an asset class with its scored result.
type ClassSentiment struct {
	Class  domain.AssetClass
	Result insights.SentimentResult
}

func FormatMarketContext(summary []string, sentiments []ClassSentiment) string {
	var sb strings.Builder

	if len(summary) > 0 {
		sb.WriteString("\nMarket Summary:\n")
		for _, line := range summary {
			sb.WriteString("  " + line + "\n")
		}
	}

	if len(sentiments) > 0 {
		sb.WriteString("\nSentiment Scores:\n")
		for _, s := range sentiments {
			sb.WriteString(fmt.Sprintf("  %s: %d/100 (%s), %d of %d assets rising\n",
				s.Class, s.Result.Score, s.Result.Bucket.Label(),
				s.Result.PositiveCount, s.Result.TotalCount))
			if len(s.Result.TopPerformers) > 0 {
				sb.WriteString("    Leaders: " + rankedList(s.Result.TopPerformers) + "\n")
			}
			if len(s.Result.Laggards) > 0 {
				sb.WriteString("    Laggards: " + rankedList(s.Result.Laggards) + "\n")
			}
		}
	}

	if sb.Len() == 0 {
		return "No market data currently available."
	}
	return sb.String()
}

func rankedList(assets []insights.RankedAsset) string {
	parts := make([]string, 0, len(assets))
	for _, a := range assets {
		parts = append(parts, fmt.Sprintf("%s (%s)", a.Name, a.Display))
	}
	return strings.Join(parts, ", ")
}
