package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/avdeevdanil/channel_post_bot/internal/auth"
	"github.com/avdeevdanil/channel_post_bot/internal/bot"
	"github.com/avdeevdanil/channel_post_bot/internal/config"
	"github.com/avdeevdanil/channel_post_bot/internal/db"
	"github.com/avdeevdanil/channel_post_bot/internal/moderation"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Error loading config: %v", err)
	}

	database, err := db.New(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	defer database.Close()

	err = db.RunMigrations(database.Conn, "db_scripts/init.sql")
	if err != nil {
		logger.Fatalf("Error running migrations: %v", err)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatalf("Error creating telegram bot: %v", err)
	}

	postRepo := db.NewPostRepository(database.Conn)
	policy := auth.NewPolicy(cfg.AdminIDs)
	reviews := moderation.NewReviews(policy)
	processor := moderation.NewProcessor(policy, postRepo, reviews)

	botService := bot.New(
		botAPI,
		processor,
		reviews,
		policy,
		postRepo,
		cfg.ChannelID,
		logger,
	)

	logger.Printf("Bot started as @%s", botAPI.Self.UserName)

	botService.Start()
}
