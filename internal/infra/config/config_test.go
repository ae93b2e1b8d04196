package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/miku")
	t.Setenv("MIKU_OWNER_IDS", "1, 2,,3 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/miku", cfg.DatabaseURL)
	assert.Equal(t, "allowlist.json", cfg.AllowlistPath)
	assert.Equal(t, "!", cfg.Prefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"1", "2", "3"}, cfg.OwnerIDs)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)

	os.Unsetenv("DATABASE_URL")
	_, err = Load()
	assert.Error(t, err)
}

func TestBotToken(t *testing.T) {
	tok, err := Config{DiscordToken: " abc "}.BotToken()
	require.NoError(t, err)
	assert.Equal(t, "Bot abc", tok)

	tok, err = Config{DiscordToken: "bot abc"}.BotToken()
	require.NoError(t, err)
	assert.Equal(t, "bot abc", tok)

	_, err = Config{}.BotToken()
	assert.Error(t, err)
}
