package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Los IDs vienen de Discord como snowflakes; acá solo son claves.
type (
	GuildID   int64
	MemberID  int64
	ChannelID int64
)

func (id GuildID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id MemberID) String() string  { return strconv.FormatInt(int64(id), 10) }
func (id ChannelID) String() string { return strconv.FormatInt(int64(id), 10) }

// Mention devuelve el formato <@id> que Discord renderiza como mención.
func (id MemberID) Mention() string { return "<@" + id.String() + ">" }

func (id ChannelID) Mention() string { return "<#" + id.String() + ">" }

func parseSnowflake(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", raw)
	}
	return v, nil
}

func ParseGuildID(raw string) (GuildID, error) {
	v, err := parseSnowflake(raw)
	return GuildID(v), err
}

func ParseMemberID(raw string) (MemberID, error) {
	v, err := parseSnowflake(raw)
	return MemberID(v), err
}

func ParseChannelID(raw string) (ChannelID, error) {
	v, err := parseSnowflake(raw)
	return ChannelID(v), err
}
