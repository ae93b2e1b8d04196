package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatShortTS(t *testing.T) {
	assert.Equal(t, NoData, FormatShortTS(nil))

	ts := int64(1000)
	assert.Equal(t, "01/01/1970 00:16:40 UTC", FormatShortTS(&ts))

	ts = 1700000000
	assert.Equal(t, "14/11/2023 22:13:20 UTC", FormatShortTS(&ts))
}

func TestParseIDs(t *testing.T) {
	g, err := ParseGuildID(" 100 ")
	require.NoError(t, err)
	assert.Equal(t, GuildID(100), g)
	assert.Equal(t, "100", g.String())

	_, err = ParseGuildID("abc")
	assert.Error(t, err)
	_, err = ParseMemberID("-5")
	assert.Error(t, err)

	c, err := ParseChannelID("55")
	require.NoError(t, err)
	assert.Equal(t, "<#55>", c.Mention())
	assert.Equal(t, "<@7>", MemberID(7).Mention())
}

func TestGuildSettingsEnabled(t *testing.T) {
	assert.True(t, GuildSettings{LogChannel: 55, Active: true}.Enabled())
	assert.False(t, GuildSettings{LogChannel: 55, Active: false}.Enabled())
	assert.False(t, GuildSettings{LogChannel: 0, Active: true}.Enabled())
}
