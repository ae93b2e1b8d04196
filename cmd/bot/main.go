package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/miku-logger/internal/adapters/discord"
	"github.com/jose-valero/miku-logger/internal/app/service"
	"github.com/jose-valero/miku-logger/internal/infra/allowlist"
	"github.com/jose-valero/miku-logger/internal/infra/config"
	"github.com/jose-valero/miku-logger/internal/infra/logging"
	"github.com/jose-valero/miku-logger/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	auth, err := cfg.BotToken()
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// DB
	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db open", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := storage.Migrate(ctx, db); err != nil {
		log.Error("migrate", "err", err)
		os.Exit(1)
	}
	log.Info("db ready")

	// Repos + allowlist
	settingsRepo := storage.NewSettingsRepo(db)
	timesRepo := storage.NewMemberTimesRepo(db)
	allow := allowlist.New(cfg.AllowlistPath, allowlist.WithLogger(log.With("component", "allowlist")))
	log.Info("allowlist loaded", "path", cfg.AllowlistPath, "guilds", allow.Refresh())

	// Discord session
	s, err := discordgo.New(auth)
	if err != nil {
		log.Error("discord session", "err", err)
		os.Exit(1)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
	// handlers en serie y en orden de llegada: join/leave del mismo miembro no se pisan
	s.SyncEvents = true

	// Services
	channels := discordrouter.NewStateChannels(s.State)
	gate := service.NewGate(allow, settingsRepo, channels)
	membersSvc := service.NewMembershipService(gate, timesRepo, nil)
	commandsSvc := service.NewCommandService(gate, settingsRepo, timesRepo, channels, cfg.RepoURL)

	owners := discordrouter.NewOwners(cfg.OwnerIDs...)
	r := discordrouter.NewRouter(s, log.With("component", "discord"), cfg.DiscordGuild, cfg.Prefix, owners, membersSvc, commandsSvc)
	r.Handlers()

	if err := s.Open(); err != nil {
		log.Error("discord open", "err", err)
		os.Exit(1)
	}
	defer s.Close()
	log.Info("connected", "user", s.State.User.Username, "id", s.State.User.ID)

	if err := owners.LoadApplication(s); err != nil {
		// seguimos con los owners de config
		log.Warn("owners", "err", err)
	}
	if err := r.Register(); err != nil {
		log.Error("register commands", "err", err)
		os.Exit(1)
	}
	if cfg.DiscordGuild == "" {
		log.Info("commands registered globally")
	} else {
		log.Info("commands registered", "guild", cfg.DiscordGuild)
	}

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
	log.Info("shutting down")
}
