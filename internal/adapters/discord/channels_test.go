package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/miku-logger/internal/domain"
)

func newTestState(t *testing.T) *discordgo.State {
	t.Helper()
	st := discordgo.NewState()
	require.NoError(t, st.GuildAdd(&discordgo.Guild{
		ID:   "100",
		Name: "Miku Fans",
		Channels: []*discordgo.Channel{
			{ID: "55", Type: discordgo.ChannelTypeGuildText},
			{ID: "56", Type: discordgo.ChannelTypeGuildVoice},
		},
	}))
	require.NoError(t, st.GuildAdd(&discordgo.Guild{ID: "200", Name: "Other"}))
	require.NoError(t, st.ChannelAdd(&discordgo.Channel{ID: "66", GuildID: "200", Type: discordgo.ChannelTypeGuildNews}))
	return st
}

func TestStateChannels(t *testing.T) {
	c := NewStateChannels(newTestState(t))

	info, ok := c.LookupChannel(100, 55)
	assert.True(t, ok)
	assert.True(t, info.Text)

	info, ok = c.LookupChannel(100, 56)
	assert.True(t, ok)
	assert.False(t, info.Text)

	// canal de otro guild
	_, ok = c.LookupChannel(100, 66)
	assert.False(t, ok)
	info, ok = c.LookupChannel(200, 66)
	assert.True(t, ok)
	assert.True(t, info.Text)

	_, ok = c.LookupChannel(100, domain.ChannelID(999))
	assert.False(t, ok)
	_, ok = c.LookupChannel(100, 0)
	assert.False(t, ok)
}

func TestGuildName(t *testing.T) {
	st := newTestState(t)
	assert.Equal(t, "Miku Fans", guildName(st, "100"))
	assert.Equal(t, "300", guildName(st, "300"))
	assert.Equal(t, "300", guildName(nil, "300"))
}
