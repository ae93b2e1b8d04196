package domain

// GuildSettings es la config de logging de un guild.
type GuildSettings struct {
	GuildID    GuildID
	LogChannel ChannelID // 0 = sin canal
	Active     bool
}

// Enabled: solo cuenta como habilitado si está activo Y tiene canal.
func (g GuildSettings) Enabled() bool {
	return g.Active && g.LogChannel != 0
}
