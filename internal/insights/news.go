package insights

import (
	"fmt"
	"time"

	"marome-markets/internal/domain"
)

// NewsCard is one article prepared for display.
type NewsCard struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Summary  string `json:"summary,omitempty"`
	TimeAgo  string `json:"time_ago"`
}

// NewsCards formats articles in provider order with a relative
// published-at stamp.
func NewsCards(articles []domain.NewsArticle, now time.Time) []NewsCard {
	cards := make([]NewsCard, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, NewsCard{
			Headline: a.Headline,
			Source:   a.Source,
			URL:      a.URL,
			Summary:  a.Summary,
			TimeAgo:  TimeAgo(time.Unix(a.Datetime, 0), now),
		})
	}
	return cards
}

var timeAgoUnits = []struct {
	name    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// TimeAgo renders how long ago t was relative to now, in the largest
// whole unit: "3 hours ago", "1 minute ago". Anything under a minute is
// "Just now".
func TimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	for _, unit := range timeAgoUnits {
		interval := seconds / unit.seconds
		if interval >= 1 {
			label := unit.name
			if interval != 1 {
				label += "s"
			}
			return fmt.Sprintf("%d %s ago", interval, label)
		}
	}
	return "Just now"
}
