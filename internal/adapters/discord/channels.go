package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/miku-logger/internal/app/service"
	"github.com/jose-valero/miku-logger/internal/domain"
)

// StateChannels resuelve canales contra el cache de estado de discordgo (sin REST).
type StateChannels struct{ st *discordgo.State }

func NewStateChannels(st *discordgo.State) *StateChannels { return &StateChannels{st: st} }

func (c *StateChannels) LookupChannel(guildID domain.GuildID, channelID domain.ChannelID) (service.ChannelInfo, bool) {
	if c.st == nil || channelID == 0 {
		return service.ChannelInfo{}, false
	}
	ch, err := c.st.Channel(channelID.String())
	if err != nil || ch == nil {
		return service.ChannelInfo{}, false
	}
	// los canales que llegan en GUILD_CREATE a veces no traen guild_id
	if ch.GuildID != "" && ch.GuildID != guildID.String() {
		return service.ChannelInfo{}, false
	}
	if ch.GuildID == "" && !c.inGuild(guildID.String(), ch.ID) {
		return service.ChannelInfo{}, false
	}
	text := ch.Type == discordgo.ChannelTypeGuildText || ch.Type == discordgo.ChannelTypeGuildNews
	return service.ChannelInfo{ID: channelID, Text: text}, true
}

func (c *StateChannels) inGuild(guildID, channelID string) bool {
	g, err := c.st.Guild(guildID)
	if err != nil || g == nil {
		return false
	}
	c.st.RLock()
	defer c.st.RUnlock()
	for _, ch := range g.Channels {
		if ch.ID == channelID {
			return true
		}
	}
	return false
}

func guildName(st *discordgo.State, guildID string) string {
	if st == nil {
		return guildID
	}
	if g, err := st.Guild(guildID); err == nil && g != nil && g.Name != "" {
		return g.Name
	}
	return guildID
}
