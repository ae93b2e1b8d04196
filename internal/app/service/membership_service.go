package service

import (
	"context"
	"errors"
	"time"

	"github.com/jose-valero/miku-logger/internal/domain"
	"github.com/jose-valero/miku-logger/internal/infra/storage"
)

type EventKind int

const (
	MemberJoined EventKind = iota + 1
	MemberLeft
)

// Notice es lo que hay que anunciar en el canal de logs.
type Notice struct {
	Kind     EventKind
	GuildID  domain.GuildID
	MemberID domain.MemberID
	Channel  domain.ChannelID
	At       int64
	// Previous es el último evento opuesto: last_out en un join, last_join en un leave
	Previous *int64
}

type MembershipService struct {
	gate  *Gate
	times MemberTimesRepo
	now   func() time.Time
}

// now nil usa time.Now
func NewMembershipService(gate *Gate, times MemberTimesRepo, now func() time.Time) *MembershipService {
	if now == nil {
		now = time.Now
	}
	return &MembershipService{gate: gate, times: times, now: now}
}

// Joined registra last_join y devuelve la notificación (nil si no hay que mandar nada).
// El timestamp se escribe aunque el guild esté inactivo; solo la allowlist lo evita.
func (s *MembershipService) Joined(ctx context.Context, guildID domain.GuildID, memberID domain.MemberID) (*Notice, error) {
	return s.record(ctx, MemberJoined, guildID, memberID, s.times.GetLastOut, s.times.SetLastJoin)
}

func (s *MembershipService) Left(ctx context.Context, guildID domain.GuildID, memberID domain.MemberID) (*Notice, error) {
	return s.record(ctx, MemberLeft, guildID, memberID, s.times.GetLastJoin, s.times.SetLastOut)
}

type (
	getTS func(ctx context.Context, guildID domain.GuildID, userID domain.MemberID) (int64, error)
	setTS func(ctx context.Context, guildID domain.GuildID, userID domain.MemberID, ts int64) error
)

func (s *MembershipService) record(ctx context.Context, kind EventKind, guildID domain.GuildID, memberID domain.MemberID, opposite getTS, current setTS) (*Notice, error) {
	if !s.gate.Allowed(guildID) {
		return nil, nil
	}
	now := s.now().UTC().Unix()

	// se lee el opuesto antes de escribir el actual
	prev, err := optionalTS(opposite(ctx, guildID, memberID))
	if err != nil {
		return nil, err
	}
	if err := current(ctx, guildID, memberID, now); err != nil {
		return nil, err
	}

	ch, ok, err := s.gate.ResolveTarget(ctx, guildID)
	if err != nil || !ok {
		return nil, err
	}
	return &Notice{
		Kind:     kind,
		GuildID:  guildID,
		MemberID: memberID,
		Channel:  ch,
		At:       now,
		Previous: prev,
	}, nil
}

func optionalTS(ts int64, err error) (*int64, error) {
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
