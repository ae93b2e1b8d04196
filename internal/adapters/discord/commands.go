package discord

import "github.com/bwmarrin/discordgo"

var guildOnly = false

var textChannelTypes = []discordgo.ChannelType{
	discordgo.ChannelTypeGuildText,
	discordgo.ChannelTypeGuildNews,
}

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:         "activelogger",
		Description:  "Activate logging in this guild and set the log channel",
		DMPermission: &guildOnly,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Channel that receives join/leave logs",
			ChannelTypes: textChannelTypes,
			Required:     true,
		}},
	},
	{
		Name:         "inactive",
		Description:  "Deactivate logging in this guild",
		DMPermission: &guildOnly,
	},
	{
		Name:         "showlog",
		Description:  "Show current log channel and status for this guild",
		DMPermission: &guildOnly,
	},
	{
		Name:         "lastjoin",
		Description:  "Show the last join time for a member",
		DMPermission: &guildOnly,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "Member to look up (defaults to you)",
		}},
	},
	{
		Name:         "lastout",
		Description:  "Show the last leave time for a member",
		DMPermission: &guildOnly,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "Member to look up (defaults to you)",
		}},
	},
}
