package insights

import (
	"testing"
	"time"

	"marome-markets/internal/domain"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{26 * time.Hour, "1 day ago"},
		{8 * 24 * time.Hour, "1 week ago"},
		{40 * 24 * time.Hour, "1 month ago"},
		{400 * 24 * time.Hour, "1 year ago"},
	}
	for _, c := range cases {
		if got := TimeAgo(now.Add(-c.ago), now); got != c.want {
			t.Fatalf("TimeAgo(-%v) = %q, want %q", c.ago, got, c.want)
		}
	}
}

func TestNewsCards(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	articles := []domain.NewsArticle{
		{Headline: "Rates held", Source: "Wire", URL: "https://example.com/a", Datetime: now.Add(-2 * time.Hour).Unix()},
	}
	cards := NewsCards(articles, now)
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if cards[0].Headline != "Rates held" || cards[0].TimeAgo != "2 hours ago" {
		t.Fatalf("card = %+v", cards[0])
	}
}
