package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marome-markets/internal/advisor"
	"marome-markets/internal/bot"
	"marome-markets/internal/cache"
	"marome-markets/internal/config"
	"marome-markets/internal/db"
	"marome-markets/internal/handler"
	"marome-markets/internal/job"
	"marome-markets/internal/provider"
	"marome-markets/internal/repository"
	"marome-markets/internal/service"
	"marome-markets/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "marome-markets/docs"
)

var (
	loadEnvFunc             = godotenv.Load
	loadConfigFunc          = config.Load
	initPostgresFunc        = db.InitPostgres
	initRedisFunc           = cache.InitRedis
	initTracerFunc          = tracing.InitTracer
	newSnapshotRepoFunc     = repository.NewSnapshotRepository
	newConversationRepoFunc = repository.NewConversationRepository
	newMarketProviderFunc   = func(tracer trace.Tracer, baseURL string) service.MarketDataProvider {
		return provider.NewMarketDataProvider(tracer, baseURL)
	}
	newInsightsServiceFunc = service.NewInsightsService
	newInsightsPollerFunc  = job.NewInsightsPoller
	startPollerFunc        = func(p *job.InsightsPoller, ctx context.Context) { go p.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newOpenAIClientFunc    = advisor.NewOpenAIClient
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Marome Markets API
// @version         1.0
// @description     Market sentiment and commentary service with OpenTelemetry tracing.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Postgres and Redis
	os.Setenv("DATABASE_URL", cfg.DatabaseURL)
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initPostgresFunc(ctx)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create repositories and run migrations
	snapshotRepo := newSnapshotRepoFunc(db.Pool, tracer)
	convRepo := newConversationRepoFunc(db.Pool, tracer)
	if db.Pool != nil {
		if err := snapshotRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Create provider and insights service
	marketProvider := newMarketProviderFunc(tracer, cfg.MarketDataBaseURL)
	insightsService := newInsightsServiceFunc(tracer, marketProvider, snapshotRepo, cache.Client,
		time.Duration(cfg.CacheTTLSecs)*time.Second, cfg.CorrelationDays)

	// Advisor (optional)
	var advisorSvc *advisor.AdvisorService
	if cfg.OpenAIAPIKey != "" {
		llmClient := newOpenAIClientFunc(cfg.OpenAIAPIKey)
		advisorSvc = advisor.NewAdvisorService(tracer, llmClient, insightsService,
			convRepo, cfg.OpenAIModel, cfg.AdvisorMaxHistory)
		log.Println("Advisor service enabled")
	}

	// Start insights poller (background goroutines, stopped by ctx cancel)
	poller := newInsightsPollerFunc(tracer, insightsService,
		cfg.QuotesPollSecs, cfg.HeatmapPollSecs, cfg.CorrelationPollSecs)
	startPollerFunc(poller, ctx)

	// Start Telegram bot
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(insightsService, advisorSvc)

	// Create handlers and routes
	var chatSvc handler.ChatService
	if advisorSvc != nil {
		chatSvc = advisorSvc
	}
	h := newHandlerFunc(tracer, insightsService, chatSvc)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("marome-markets"))

	h.RegisterRoutes(r, cfg.APIKey)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
