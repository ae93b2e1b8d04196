package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jose-valero/miku-logger/internal/domain"
)

type SettingsRepo struct{ db Querier }

func NewSettingsRepo(db Querier) *SettingsRepo { return &SettingsRepo{db: db} }

// Get devuelve ErrNotFound si el guild nunca se configuró.
func (r *SettingsRepo) Get(ctx context.Context, guildID domain.GuildID) (domain.GuildSettings, error) {
	var (
		channel int64
		active  bool
	)
	err := r.db.QueryRow(ctx, `
SELECT log_channel_id, active
  FROM guild_settings
 WHERE guild_id = $1
`, int64(guildID)).Scan(&channel, &active)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.GuildSettings{}, ErrNotFound
	}
	if err != nil {
		return domain.GuildSettings{}, wrap("get guild settings", err)
	}
	return domain.GuildSettings{GuildID: guildID, LogChannel: domain.ChannelID(channel), Active: active}, nil
}

// Enable: upsert, siempre active=true y pisa el canal.
func (r *SettingsRepo) Enable(ctx context.Context, guildID domain.GuildID, channelID domain.ChannelID) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO guild_settings (guild_id, log_channel_id, active)
VALUES ($1, $2, TRUE)
ON CONFLICT (guild_id) DO UPDATE SET
  log_channel_id = EXCLUDED.log_channel_id,
  active         = TRUE,
  updated_at     = now()
`, int64(guildID), int64(channelID))
	return wrap("enable guild", err)
}

// Disable no crea filas: si el guild no existe no hace nada. El canal queda como estaba.
func (r *SettingsRepo) Disable(ctx context.Context, guildID domain.GuildID) error {
	_, err := r.db.Exec(ctx, `
UPDATE guild_settings
   SET active = FALSE, updated_at = now()
 WHERE guild_id = $1
`, int64(guildID))
	return wrap("disable guild", err)
}

// Upsert guarda el registro tal cual (lo usa la importación legacy, no fuerza active).
func (r *SettingsRepo) Upsert(ctx context.Context, g domain.GuildSettings) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO guild_settings (guild_id, log_channel_id, active)
VALUES ($1, $2, $3)
ON CONFLICT (guild_id) DO UPDATE SET
  log_channel_id = EXCLUDED.log_channel_id,
  active         = EXCLUDED.active,
  updated_at     = now()
`, int64(g.GuildID), int64(g.LogChannel), g.Active)
	return wrap("upsert guild settings", err)
}
