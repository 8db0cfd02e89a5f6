package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/urfave/cli/v2"

	"github.com/clubgate/clubgate-bot/internal/config"
	"github.com/clubgate/clubgate-bot/internal/handlers"
	"github.com/clubgate/clubgate-bot/internal/invites"
	"github.com/clubgate/clubgate-bot/internal/ledger"
	"github.com/clubgate/clubgate-bot/internal/middleware"
	"github.com/clubgate/clubgate-bot/internal/payments"
	"github.com/clubgate/clubgate-bot/internal/pending"
	"github.com/clubgate/clubgate-bot/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "clubgate-bot",
		Usage: "Telegram bot selling time-limited community-access subscriptions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Aliases: []string{"e"}, Usage: "Path to an env file", Value: "config.env"},
			&cli.BoolFlag{Name: "development", Aliases: []string{"D"}, Usage: "Development mode"},
			&cli.Int64Flag{Name: "admin-id", Aliases: []string{"a"}, Usage: "Admin chat ID"},
			&cli.StringFlag{Name: "subscriptions-file", Usage: "Path to the subscription ledger"},
			&cli.StringFlag{Name: "used-links-file", Usage: "Path to the consumed invite links file"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("development") {
		cfg.Development = c.Bool("development")
	}
	if c.IsSet("admin-id") {
		cfg.AdminID = c.Int64("admin-id")
	}
	if c.IsSet("subscriptions-file") {
		cfg.SubscriptionsFile = c.String("subscriptions-file")
	}
	if c.IsSet("used-links-file") {
		cfg.UsedLinksFile = c.String("used-links-file")
	}

	sl, err := logger.New(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = sl.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	tracker := pending.NewTracker()
	subs := ledger.New(cfg.SubscriptionsFile)
	pool := invites.NewPool(cfg.InviteLinks, cfg.UsedLinksFile)

	if remaining, err := pool.Remaining(); err != nil {
		sl.Warnw("failed to count remaining invites", "err", err)
	} else {
		sl.Infow("invite pool loaded",
			"configured", len(cfg.InviteLinks), "remaining", remaining)
	}

	svc := payments.NewService(sl, tracker, subs, pool)
	h := handlers.NewHandlers(cfg.AdminID, svc, sl)
	classifier := middleware.NewClassifier(sl)

	httpClient := &http.Client{
		Timeout: 10 * time.Minute,
	}
	pollTimeout := 50 * time.Second

	b, err := bot.New(
		cfg.BotToken,
		bot.WithHTTPClient(pollTimeout, httpClient),
	)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	handlerChain := classifier.ClassifyUpdate(h.MainHandler)

	b.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.Message != nil
	}, handlerChain)

	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, handlerChain)

	sl.Infow("bot started", "admin_id", cfg.AdminID)
	b.Start(ctx)
	return nil
}
