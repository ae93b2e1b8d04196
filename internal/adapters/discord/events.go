package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/miku-logger/internal/app/service"
	"github.com/jose-valero/miku-logger/internal/domain"
)

func (r *Router) onMemberAdd(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
	r.onMembership(s, e.Member, r.members.Joined)
}

func (r *Router) onMemberRemove(s *discordgo.Session, e *discordgo.GuildMemberRemove) {
	r.onMembership(s, e.Member, r.members.Left)
}

type membershipFn func(ctx context.Context, guildID domain.GuildID, memberID domain.MemberID) (*service.Notice, error)

func (r *Router) onMembership(s *discordgo.Session, m *discordgo.Member, record membershipFn) {
	if m == nil || m.User == nil || m.GuildID == "" {
		return
	}
	gid, err := domain.ParseGuildID(m.GuildID)
	if err != nil {
		return
	}
	mid, err := domain.ParseMemberID(m.User.ID)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := record(ctx, gid, mid)
	if err != nil {
		r.log.Error("membership event", "guild", gid, "member", mid, "err", err)
		return
	}
	if n == nil {
		return
	}
	r.sendNotice(s, n, m)
}

// sendNotice nunca propaga: lo que ya se escribió en la base queda.
func (r *Router) sendNotice(s *discordgo.Session, n *service.Notice, m *discordgo.Member) {
	embed := noticeEmbed(n, m, guildName(s.State, n.GuildID.String()))
	if _, err := s.ChannelMessageSendEmbed(n.Channel.String(), embed); err != nil {
		if isForbidden(err) {
			r.log.Debug("no permission to post notice", "guild", n.GuildID, "channel", n.Channel)
			return
		}
		r.log.Warn("post notice", "guild", n.GuildID, "channel", n.Channel, "err", err)
	}
}
