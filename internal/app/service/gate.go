package service

import (
	"context"
	"errors"

	"github.com/jose-valero/miku-logger/internal/domain"
	"github.com/jose-valero/miku-logger/internal/infra/storage"
)

// Gate decide si un guild puede tocarse y a qué canal van las notificaciones.
// La allowlist corta todo; active/canal solo cortan la notificación.
type Gate struct {
	allow    Allowlist
	settings SettingsRepo
	channels ChannelLookup
}

func NewGate(allow Allowlist, settings SettingsRepo, channels ChannelLookup) *Gate {
	return &Gate{allow: allow, settings: settings, channels: channels}
}

func (g *Gate) Allowed(guildID domain.GuildID) bool {
	return guildID != 0 && g.allow.IsAllowed(guildID)
}

// ResolveTarget devuelve el canal que recibe la notificación, ok=false si no hay que mandar nada.
func (g *Gate) ResolveTarget(ctx context.Context, guildID domain.GuildID) (domain.ChannelID, bool, error) {
	if !g.Allowed(guildID) {
		return 0, false, nil
	}
	gs, err := g.settings.Get(ctx, guildID)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if !gs.Enabled() {
		return 0, false, nil
	}
	ch, ok := g.channels.LookupChannel(guildID, gs.LogChannel)
	if !ok || !ch.Text {
		return 0, false, nil
	}
	return gs.LogChannel, true, nil
}

type Denial int

const (
	DenyNone Denial = iota
	DenyNoGuild
	DenyNotOwner
	DenyNotAllowlisted
	DenyInactive
)

func (d Denial) String() string {
	switch d {
	case DenyNone:
		return "none"
	case DenyNoGuild:
		return "no_guild"
	case DenyNotOwner:
		return "not_owner"
	case DenyNotAllowlisted:
		return "not_allowlisted"
	case DenyInactive:
		return "inactive"
	}
	return "unknown"
}

// Invocation es quién llama un comando y desde dónde. GuildID 0 = DM.
type Invocation struct {
	GuildID domain.GuildID
	UserID  domain.MemberID
	IsOwner bool
}

// CheckCommand aplica los chequeos en orden fijo y devuelve el primero que falla:
// contexto de guild, owner, allowlist y (si requireActive) guild activo.
func (g *Gate) CheckCommand(ctx context.Context, inv Invocation, requireActive bool) (Denial, error) {
	if inv.GuildID == 0 {
		return DenyNoGuild, nil
	}
	if !inv.IsOwner {
		return DenyNotOwner, nil
	}
	if !g.Allowed(inv.GuildID) {
		return DenyNotAllowlisted, nil
	}
	if !requireActive {
		return DenyNone, nil
	}
	gs, err := g.settings.Get(ctx, inv.GuildID)
	if errors.Is(err, storage.ErrNotFound) {
		return DenyInactive, nil
	}
	if err != nil {
		return DenyNone, err
	}
	if !gs.Enabled() {
		return DenyInactive, nil
	}
	return DenyNone, nil
}
