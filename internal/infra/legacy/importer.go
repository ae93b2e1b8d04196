package legacy

import (
	"context"
	"log/slog"

	"github.com/jose-valero/miku-logger/internal/domain"
)

type Source interface {
	Settings(ctx context.Context) ([]domain.GuildSettings, error)
	LastJoins(ctx context.Context) ([]Stamp, error)
	LastOuts(ctx context.Context) ([]Stamp, error)
}

type SettingsWriter interface {
	Upsert(ctx context.Context, s domain.GuildSettings) error
}

type TimesWriter interface {
	SetLastJoin(ctx context.Context, guildID domain.GuildID, memberID domain.MemberID, ts int64) error
	SetLastOut(ctx context.Context, guildID domain.GuildID, memberID domain.MemberID, ts int64) error
}

type Allowlist interface {
	IsAllowed(guildID domain.GuildID) bool
}

// Report cuenta lo que se copió. Skipped son filas de guilds fuera del allowlist.
type Report struct {
	Settings int
	Joins    int
	Outs     int
	Skipped  int
}

type Importer struct {
	settings SettingsWriter
	times    TimesWriter
	allow    Allowlist
	log      *slog.Logger
	DryRun   bool
}

func NewImporter(settings SettingsWriter, times TimesWriter, allow Allowlist, log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}
	return &Importer{settings: settings, times: times, allow: allow, log: log}
}

// Run copia todo src. Corta en el primer error de escritura: las escrituras son
// upserts, así que se puede volver a correr.
func (im *Importer) Run(ctx context.Context, src Source) (Report, error) {
	var rep Report

	settings, err := src.Settings(ctx)
	if err != nil {
		return rep, err
	}
	for _, s := range settings {
		if !im.allow.IsAllowed(s.GuildID) {
			rep.Skipped++
			continue
		}
		if !im.DryRun {
			if err := im.settings.Upsert(ctx, s); err != nil {
				return rep, err
			}
		}
		rep.Settings++
	}

	joins, err := src.LastJoins(ctx)
	if err != nil {
		return rep, err
	}
	n, err := im.copyStamps(ctx, joins, im.times.SetLastJoin, &rep.Skipped)
	rep.Joins = n
	if err != nil {
		return rep, err
	}

	outs, err := src.LastOuts(ctx)
	if err != nil {
		return rep, err
	}
	n, err = im.copyStamps(ctx, outs, im.times.SetLastOut, &rep.Skipped)
	rep.Outs = n
	if err != nil {
		return rep, err
	}

	im.log.Info("legacy import done",
		"settings", rep.Settings, "joins", rep.Joins, "outs", rep.Outs,
		"skipped", rep.Skipped, "dry_run", im.DryRun)
	return rep, nil
}

type setFn func(ctx context.Context, guildID domain.GuildID, memberID domain.MemberID, ts int64) error

func (im *Importer) copyStamps(ctx context.Context, rows []Stamp, set setFn, skipped *int) (int, error) {
	n := 0
	for _, r := range rows {
		if !im.allow.IsAllowed(r.GuildID) {
			*skipped++
			continue
		}
		if !im.DryRun {
			if err := set(ctx, r.GuildID, r.MemberID, r.TS); err != nil {
				return n, err
			}
		}
		n++
	}
	return n, nil
}
