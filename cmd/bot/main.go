package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/korjavin/pantrychef/pkg/commands"
	"github.com/korjavin/pantrychef/pkg/config"
	"github.com/korjavin/pantrychef/pkg/kitchen"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/openai"
	"github.com/korjavin/pantrychef/pkg/pantry"
	"github.com/korjavin/pantrychef/pkg/recipes"
	"github.com/korjavin/pantrychef/pkg/state"
	"github.com/korjavin/pantrychef/pkg/storage"
	"github.com/korjavin/pantrychef/pkg/telegram"
)

func main() {
	if err := run(); err != nil {
		logger.Global.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize logger
	log := logger.Global
	log.Info("Starting PantryChef bot...")

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	logger.SetLevel(cfg.LogLevel)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	// Start BadgerDB garbage collection
	store.StartGCRoutine(ctx, cfg.GCInterval)

	// Initialize services
	k := kitchen.New(pantry.New(store), recipes.New(store))
	if err := k.Load(); err != nil {
		// Fallback data is already in memory, the bot can still serve
		log.Error("Kitchen loaded with errors: %v", err)
	}
	stateManager := state.New()

	// Initialize OpenAI client
	var parser commands.IngredientParser
	if cfg.LLMEnabled() {
		parser = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)
	} else {
		log.Info("OPENAI_API_KEY not set, free text will be split on separators")
	}

	// Initialize Telegram bot
	bot, err := telegram.New(cfg.BotToken, cfg.OwnerChatID)
	if err != nil {
		return err
	}
	if err := bot.SetCommands(commands.Menu()); err != nil {
		log.Warn("Failed to publish command menu: %v", err)
	}

	handler := commands.New(ctx, k, stateManager, bot, parser)

	// Start the bot
	log.Info("Bot is now running. Press CTRL-C to exit.")
	if err := bot.Start(ctx, handler.Commands(), handler.Callbacks(), handler.Default); err != nil {
		return err
	}
	log.Info("Shutting down...")
	return nil
}
