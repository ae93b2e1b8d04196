package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/miku-logger/internal/app/service"
	"github.com/jose-valero/miku-logger/internal/domain"
)

const (
	colorBlue = 0x3498db
	colorRed  = 0xe74c3c
)

// noticeEmbed arma el embed de join/leave. m puede venir sin User en eventos raros.
func noticeEmbed(n *service.Notice, m *discordgo.Member, guild string) *discordgo.MessageEmbed {
	userName := n.MemberID.String()
	avatar := ""
	if m != nil && m.User != nil {
		userName = m.User.String()
		avatar = m.AvatarURL("")
	}

	e := &discordgo.MessageEmbed{
		Timestamp: time.Unix(n.At, 0).UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User / ユーザー", Value: fmt.Sprintf("%s (ID: %s)", userName, n.MemberID)},
			{Name: "Guild / サーバー", Value: fmt.Sprintf("%s (ID: %s)", guild, n.GuildID)},
		},
	}
	if avatar != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: avatar}
	}

	switch n.Kind {
	case service.MemberJoined:
		e.Title = "Member Joined / 参加"
		e.Color = colorBlue
		e.Description = fmt.Sprintf(
			"Miku waves hello! %s joined the server / ミクが手を振っています。参加しました。\nLast leave / 最終退出: %s",
			n.MemberID.Mention(), domain.FormatShortTS(n.Previous),
		)
	case service.MemberLeft:
		e.Title = "Member Left / 退出"
		e.Color = colorRed
		e.Description = fmt.Sprintf(
			"Miku says bye! %s left the server / ミクが見送ります。退出しました。\nLast join / 最終参加: %s",
			userName, domain.FormatShortTS(n.Previous),
		)
	}
	return e
}
