package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"marome-markets/internal/advisor"
	"marome-markets/internal/domain"
	"marome-markets/internal/insights"
	"marome-markets/internal/service"

	tele "gopkg.in/telebot.v3"
)

func classList() string {
	names := make([]string, 0, len(domain.AssetClasses))
	for _, c := range domain.AssetClasses {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func StartTelegramBot(insightsService *service.InsightsService, advisorService *advisor.AdvisorService) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/sentiment", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send(fmt.Sprintf("Usage: /sentiment crypto\nSupported: %s", classList()))
		}
		class := domain.AssetClass(strings.ToLower(args[0]))
		if !class.IsValid() {
			return c.Send(fmt.Sprintf("Unknown asset class: %s\nSupported: %s", args[0], classList()))
		}
		result, err := insightsService.Sentiment(context.Background(), class)
		if err != nil {
			return c.Send(fmt.Sprintf("Error scoring %s: %v", class, err))
		}
		return c.Send(formatSentiment(class, result))
	})

	b.Handle("/summary", func(c tele.Context) error {
		overview, err := insightsService.Overview(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Error building summary: %v", err))
		}
		if len(overview.Summary) == 0 {
			return c.Send("No market data currently available.")
		}
		return c.Send(strings.Join(overview.Summary, "\n"))
	})

	b.Handle("/crypto", func(c tele.Context) error {
		lines, err := insightsService.Commentary(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Error building crypto commentary: %v", err))
		}
		return c.Send(strings.Join(lines, "\n"))
	})

	b.Handle("/ask", func(c tele.Context) error {
		if advisorService == nil {
			return c.Send("The advisor is not configured.")
		}
		question := strings.TrimSpace(strings.Join(c.Args(), " "))
		if question == "" {
			return c.Send("Usage: /ask how is crypto looking today?")
		}
		sessionID := fmt.Sprintf("tg:%d", c.Chat().ID)
		reply, err := advisorService.Chat(context.Background(), sessionID, question)
		if err != nil {
			return c.Send(fmt.Sprintf("Advisor error: %v", err))
		}
		return c.Send(reply)
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func formatSentiment(class domain.AssetClass, result insights.SentimentResult) string {
	if !result.Available {
		return fmt.Sprintf("No data available for %s right now.", class)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s Sentiment: %d/100 (%s)\n", strings.ToUpper(string(class)), result.Score, result.Bucket.Label()))
	sb.WriteString(fmt.Sprintf("%d of %d assets rising\n", result.PositiveCount, result.TotalCount))
	if len(result.TopPerformers) > 0 {
		parts := make([]string, 0, len(result.TopPerformers))
		for _, a := range result.TopPerformers {
			parts = append(parts, fmt.Sprintf("%s (%s)", a.Name, a.Display))
		}
		sb.WriteString("Leaders: " + strings.Join(parts, ", ") + "\n")
	}
	if len(result.Laggards) > 0 {
		parts := make([]string, 0, len(result.Laggards))
		for _, a := range result.Laggards {
			parts = append(parts, fmt.Sprintf("%s (%s)", a.Name, a.Display))
		}
		sb.WriteString("Laggards: " + strings.Join(parts, ", ") + "\n")
	}
	sb.WriteString(result.Narrative)
	return sb.String()
}
