package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sashakmakeup/booking_bot/internal/agent"
	"github.com/sashakmakeup/booking_bot/internal/app"
	"github.com/sashakmakeup/booking_bot/internal/config"
	"github.com/sashakmakeup/booking_bot/internal/controller"
	"github.com/sashakmakeup/booking_bot/internal/controller/handlers"
	"github.com/sashakmakeup/booking_bot/internal/controller/state"
	"github.com/sashakmakeup/booking_bot/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	studio := config.DefaultStudio()
	if err := studio.Validate(); err != nil {
		logger.Fatal("Invalid studio configuration", zap.Error(err))
	}

	bookingRepo := repository.NewBookingRepository(pool)
	stateRepo := repository.NewStateRepository(pool)
	engine := agent.NewEngine(studio, bookingRepo, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	h := handlers.NewHandlers(engine, bookingRepo, stateRepo, state.NewManager(), studio, cfg.AdminChatID, logger)
	botController := controller.NewBotController(b, h, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	reminder := app.NewReminder(b, bookingRepo, cfg.AdminChatID, logger)
	reminder.Start(ctx)
	defer reminder.Stop()

	logger.Info("Starting booking assistant bot",
		zap.String("environment", cfg.Environment),
		zap.String("business", studio.BusinessName))

	botController.Start(ctx)
}
