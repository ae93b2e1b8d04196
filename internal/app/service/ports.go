package service

import (
	"context"

	"github.com/jose-valero/miku-logger/internal/domain"
)

// Lo implementa internal/infra/allowlist.Cache
type Allowlist interface {
	IsAllowed(guildID domain.GuildID) bool
}

// Lo implementa internal/infra/storage.SettingsRepo
type SettingsRepo interface {
	Get(ctx context.Context, guildID domain.GuildID) (domain.GuildSettings, error)
	Enable(ctx context.Context, guildID domain.GuildID, channelID domain.ChannelID) error
	Disable(ctx context.Context, guildID domain.GuildID) error
}

// Lo implementa internal/infra/storage.MemberTimesRepo
type MemberTimesRepo interface {
	GetLastJoin(ctx context.Context, guildID domain.GuildID, userID domain.MemberID) (int64, error)
	SetLastJoin(ctx context.Context, guildID domain.GuildID, userID domain.MemberID, ts int64) error
	GetLastOut(ctx context.Context, guildID domain.GuildID, userID domain.MemberID) (int64, error)
	SetLastOut(ctx context.Context, guildID domain.GuildID, userID domain.MemberID, ts int64) error
}

type ChannelInfo struct {
	ID   domain.ChannelID
	Text bool // acepta mensajes (texto o anuncios)
}

// ChannelLookup resuelve canales vivos contra el cliente de chat.
// Lo implementa internal/adapters/discord.StateChannels
type ChannelLookup interface {
	LookupChannel(guildID domain.GuildID, channelID domain.ChannelID) (ChannelInfo, bool)
}
