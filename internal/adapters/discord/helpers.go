package discord

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/miku-logger/internal/domain"
)

var (
	reMention        = regexp.MustCompile(`^<@!?(\d+)>$`)
	reChannelMention = regexp.MustCompile(`^<#(\d+)>$`)
)

// parsePrefix separa "!lastjoin <@1>" en nombre y args. ok=false si no es un comando.
func parsePrefix(prefix, content string) (string, []string, bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// parseChannelArg acepta <#id> o el id pelado.
func parseChannelArg(tok string) (domain.ChannelID, bool) {
	if m := reChannelMention.FindStringSubmatch(tok); len(m) == 2 {
		tok = m[1]
	}
	id, err := domain.ParseChannelID(tok)
	return id, err == nil
}

// parseMemberArg acepta <@id>, <@!id> o el id pelado.
func parseMemberArg(tok string) (domain.MemberID, bool) {
	if m := reMention.FindStringSubmatch(tok); len(m) == 2 {
		tok = m[1]
	}
	id, err := domain.ParseMemberID(tok)
	return id, err == nil
}

func optChannel(ic *discordgo.InteractionCreate, name string) (domain.ChannelID, bool) {
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionChannel {
			id, err := domain.ParseChannelID(o.ChannelValue(nil).ID)
			return id, err == nil
		}
	}
	return 0, false
}

func optMember(ic *discordgo.InteractionCreate, name string) (domain.MemberID, bool) {
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionUser {
			id, err := domain.ParseMemberID(o.UserValue(nil).ID)
			return id, err == nil
		}
	}
	return 0, false
}

// invoker devuelve el usuario que disparó la interacción (Member en guild, User en DM).
func invoker(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User
	}
	return ic.User
}
