// acá se traduce la interacción (slash o texto) a una llamada del CommandService
package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/miku-logger/internal/app/service"
	"github.com/jose-valero/miku-logger/internal/domain"
)

// commandCall es lo mismo venga de slash o de texto.
type commandCall struct {
	name    string
	inv     service.Invocation
	channel domain.ChannelID
	target  domain.MemberID
}

// run devuelve el texto a responder; "" si el comando no existe.
func (r *Router) run(ctx context.Context, call commandCall) string {
	defer step("cmd." + call.name)()

	var (
		msg string
		err error
	)
	switch call.name {
	case "activelogger":
		msg, err = r.commands.ActiveLogger(ctx, call.inv, call.channel)
	case "inactive":
		msg, err = r.commands.Inactive(ctx, call.inv)
	case "showlog":
		msg, err = r.commands.ShowLog(ctx, call.inv)
	case "lastjoin":
		msg, err = r.commands.LastJoin(ctx, call.inv, call.target)
	case "lastout":
		msg, err = r.commands.LastOut(ctx, call.inv, call.target)
	default:
		return ""
	}
	if err != nil {
		r.log.Error("command failed", "cmd", call.name, "guild", call.inv.GuildID, "user", call.inv.UserID, "err", err)
		return service.MsgFailure
	}
	return msg
}

func (r *Router) invocation(guildID string, user *discordgo.User) service.Invocation {
	var inv service.Invocation
	if user != nil {
		inv.UserID, _ = domain.ParseMemberID(user.ID)
		inv.IsOwner = r.owners.IsOwner(user.ID)
	}
	if guildID != "" {
		inv.GuildID, _ = domain.ParseGuildID(guildID)
	}
	return inv
}

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.ApplicationCommandData()
	user := invoker(ic)
	r.log.Info("slash", "cmd", data.Name, "guild", ic.GuildID, "by", userID(user))

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("panic in slash", "cmd", data.Name, "panic", rec)
			ReplyEphemeral(s, ic, service.MsgFailure)
		}
	}()

	_ = DeferEphemeral(s, ic)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	call := commandCall{name: data.Name, inv: r.invocation(ic.GuildID, user)}
	call.channel, _ = optChannel(ic, "channel")
	call.target, _ = optMember(ic, "member")

	if msg := r.run(ctx, call); msg != "" {
		ReplyEphemeral(s, ic, msg)
	}
}

func (r *Router) handlePrefixCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	name, args, ok := parsePrefix(r.prefix, m.Content)
	if !ok || !isCommand(name) {
		return
	}
	if !r.limiter.Allow(m.Author.ID) {
		return
	}
	r.log.Info("prefix", "cmd", name, "guild", m.GuildID, "by", m.Author.ID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	call := commandCall{name: name, inv: r.invocation(m.GuildID, m.Author)}
	if len(args) > 0 {
		switch name {
		case "activelogger":
			call.channel, _ = parseChannelArg(args[0])
		case "lastjoin", "lastout":
			var ok bool
			if call.target, ok = parseMemberArg(args[0]); !ok {
				if call.inv.IsOwner {
					SendText(s, m.ChannelID, "Usage: "+r.prefix+name+" [@member]")
				}
				return
			}
		}
	}
	if msg := r.run(ctx, call); msg != "" {
		SendText(s, m.ChannelID, msg)
	}
}

func isCommand(name string) bool {
	for _, c := range Commands {
		if c.Name == name {
			return true
		}
	}
	return false
}

func userID(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}
