package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"wahalabot/pkg/bot"
	"wahalabot/pkg/config"
	"wahalabot/pkg/httpapi"
	"wahalabot/pkg/openrouter"
	"wahalabot/pkg/roast"
	"wahalabot/pkg/roastlog"
	"wahalabot/pkg/session"
)

func main() {
	// Load config.yml
	cfg, err := config.LoadConfig("config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load .env for secrets
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	botToken := os.Getenv("DISCORD_TOKEN")

	// Check each required environment variable individually for better error messages
	if apiKey == "" {
		log.Fatal("Missing required environment variable: OPENROUTER_API_KEY")
	}
	if botToken == "" {
		log.Fatal("Missing required environment variable: DISCORD_TOKEN")
	}

	// Completion client
	client := openrouter.NewClient(apiKey, openrouter.Options{
		Model:       cfg.ModelSettings.Model,
		Referer:     cfg.Headers.Referer,
		Title:       cfg.Headers.Title,
		Temperature: cfg.ModelSettings.Temperature,
		TopP:        cfg.ModelSettings.TopP,
	})

	// Audit log
	audit, err := roastlog.Open(cfg.RoastLogPath)
	if err != nil {
		log.Fatalf("Failed to open roast log: %v", err)
	}
	defer audit.Close()

	svc := roast.NewService(client, audit)

	// Session store: Redis when configured, in-memory otherwise
	var sessions session.Store
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		ttl := time.Duration(cfg.Session.TTLHours * float64(time.Hour))
		store, err := session.NewRedisStore(redisURL, ttl)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer store.Close()
		sessions = store
		log.Printf("Session store: Redis (TTL %.1fh)", cfg.Session.TTLHours)
	} else {
		sessions = session.NewMemoryStore()
		log.Println("Session store: in-memory")
	}

	// HTTP + WebSocket surfaces
	api := httpapi.NewServer(svc)
	srv := httpapi.NewHTTPServer(cfg.HTTP.Addr, api.Router())

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server crashed: %v", err)
		}
	}()

	// Discord surface
	handler := bot.NewHandler(svc, sessions)

	dg, err := discordgo.New("Bot " + botToken)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsDirectMessages | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	dg.AddHandler(handler.MessageCreate)
	dg.AddHandler(handler.InteractionCreate)

	if err := dg.Open(); err != nil {
		log.Fatalf("Error opening Discord connection: %v", err)
	}

	handler.SetBotID(dg.State.User.ID)

	// Register slash commands (empty string = global, or a guild ID for faster testing)
	guildID := os.Getenv("DISCORD_GUILD_ID")
	registeredCommands, err := bot.RegisterSlashCommands(dg, guildID)
	if err != nil {
		log.Fatalf("Error registering slash commands: %v", err)
	}
	defer func() {
		if err := bot.UnregisterSlashCommands(dg, guildID, registeredCommands); err != nil {
			log.Printf("Error unregistering slash commands: %v", err)
		}
	}()

	log.Println("WahalaBot is now running. Press CTRL-C to exit.")

	// Wait for signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down...")

	// Give the HTTP server 5 seconds to finish current requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	dg.Close()
}
