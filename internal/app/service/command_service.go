package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jose-valero/miku-logger/internal/domain"
	"github.com/jose-valero/miku-logger/internal/infra/storage"
)

// CommandService implementa los comandos de admin. Todos pasan por Gate.CheckCommand
// antes de tocar nada; los errores devueltos son siempre de storage.
type CommandService struct {
	gate     *Gate
	settings SettingsRepo
	times    MemberTimesRepo
	channels ChannelLookup
	repoURL  string
}

func NewCommandService(gate *Gate, settings SettingsRepo, times MemberTimesRepo, channels ChannelLookup, repoURL string) *CommandService {
	return &CommandService{gate: gate, settings: settings, times: times, channels: channels, repoURL: repoURL}
}

// DenialMessage: el texto guía para cada rechazo.
func (c *CommandService) DenialMessage(d Denial) string {
	switch d {
	case DenyNoGuild:
		return msgNoGuild
	case DenyNotOwner:
		return msgNotOwner
	case DenyNotAllowlisted:
		return fmt.Sprintf(msgNotAllowed, c.repoURL)
	case DenyInactive:
		return msgInactive
	}
	return ""
}

func (c *CommandService) check(ctx context.Context, inv Invocation, requireActive bool) (string, bool, error) {
	d, err := c.gate.CheckCommand(ctx, inv, requireActive)
	if err != nil {
		return "", false, err
	}
	if d != DenyNone {
		return c.DenialMessage(d), false, nil
	}
	return "", true, nil
}

// ActiveLogger activa el logging y fija el canal. Es el único comando que no exige guild activo.
func (c *CommandService) ActiveLogger(ctx context.Context, inv Invocation, channelID domain.ChannelID) (string, error) {
	if msg, ok, err := c.check(ctx, inv, false); !ok {
		return msg, err
	}
	if channelID == 0 {
		return msgUsageEnable, nil
	}
	if ch, ok := c.channels.LookupChannel(inv.GuildID, channelID); !ok || !ch.Text {
		return msgNotText, nil
	}
	if err := c.settings.Enable(ctx, inv.GuildID, channelID); err != nil {
		return "", err
	}
	return fmt.Sprintf(msgEnabled, channelID.Mention()), nil
}

func (c *CommandService) Inactive(ctx context.Context, inv Invocation) (string, error) {
	if msg, ok, err := c.check(ctx, inv, true); !ok {
		return msg, err
	}
	if err := c.settings.Disable(ctx, inv.GuildID); err != nil {
		return "", err
	}
	return msgDisabled, nil
}

func (c *CommandService) ShowLog(ctx context.Context, inv Invocation) (string, error) {
	if msg, ok, err := c.check(ctx, inv, true); !ok {
		return msg, err
	}
	gs, err := c.settings.Get(ctx, inv.GuildID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && gs.LogChannel == 0) {
		return msgNoChannel, nil
	}
	if err != nil {
		return "", err
	}

	status := "disabled / 無効"
	if gs.Active {
		status = "enabled / 有効"
	}
	channel := "ID " + gs.LogChannel.String()
	if _, ok := c.channels.LookupChannel(inv.GuildID, gs.LogChannel); ok {
		channel = gs.LogChannel.Mention()
	}
	return fmt.Sprintf(msgStatus, channel, status), nil
}

// LastJoin muestra el último ingreso de target (o del que invoca si target es 0).
func (c *CommandService) LastJoin(ctx context.Context, inv Invocation, target domain.MemberID) (string, error) {
	return c.lastTS(ctx, inv, target, msgLastJoin, c.times.GetLastJoin)
}

func (c *CommandService) LastOut(ctx context.Context, inv Invocation, target domain.MemberID) (string, error) {
	return c.lastTS(ctx, inv, target, msgLastOut, c.times.GetLastOut)
}

func (c *CommandService) lastTS(ctx context.Context, inv Invocation, target domain.MemberID, format string, get getTS) (string, error) {
	if msg, ok, err := c.check(ctx, inv, true); !ok {
		return msg, err
	}
	if target == 0 {
		target = inv.UserID
	}
	ts, err := optionalTS(get(ctx, inv.GuildID, target))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, target.Mention(), domain.FormatShortTS(ts)), nil
}
