package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	DatabaseURL  string `env:"DATABASE_URL" env-required:"true"`
	DiscordToken string `env:"DISCORD_TOKEN"`

	// Si está vacío los slash commands se registran globales
	DiscordGuild string `env:"DISCORD_GUILD_ID"`

	AllowlistPath string   `env:"MIKU_ALLOWLIST" env-default:"allowlist.json"`
	RepoURL       string   `env:"MIKU_REPO_URL" env-default:"https://github.com/yourname/MikuLogger"`
	Prefix        string   `env:"MIKU_PREFIX" env-default:"!"`
	OwnerIDs      []string `env:"MIKU_OWNER_IDS" env-separator:","`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

// Load lee la config desde el entorno (el .env lo carga main con godotenv).
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return Config{}, fmt.Errorf("config: DATABASE_URL is not set")
	}
	cfg.Prefix = strings.TrimSpace(cfg.Prefix)
	if cfg.Prefix == "" {
		cfg.Prefix = "!"
	}
	owners := cfg.OwnerIDs[:0]
	for _, id := range cfg.OwnerIDs {
		if id = strings.TrimSpace(id); id != "" {
			owners = append(owners, id)
		}
	}
	cfg.OwnerIDs = owners
	return cfg, nil
}

// BotToken agrega el prefijo "Bot " si falta.
func (c Config) BotToken() (string, error) {
	auth := strings.TrimSpace(c.DiscordToken)
	if auth == "" {
		return "", fmt.Errorf("config: DISCORD_TOKEN is not set")
	}
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth, nil
}
