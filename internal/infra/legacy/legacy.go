// Package legacy lee la base sqlite del bot viejo para migrarla a Postgres.
package legacy

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/jose-valero/miku-logger/internal/domain"
)

// Stamp es una fila de member_last_join o member_last_out.
type Stamp struct {
	GuildID  domain.GuildID
	MemberID domain.MemberID
	TS       int64
}

type DB struct {
	db *sql.DB
}

// Open abre un archivo existente. sqlite crearía uno vacío si no está.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("legacy open: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("legacy open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("legacy open: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error { return d.db.Close() }

// columns devuelve las columnas de table. Vacío si la tabla no existe.
func (d *DB) columns(ctx context.Context, table string) (map[string]bool, error) {
	rows, err := d.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("table info %s: %w", table, err)
	}
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("table info %s: %w", table, err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// Settings lee guild_settings. Las bases anteriores a la columna active
// se leen como inactivas, igual que las dejaba el ALTER TABLE del bot viejo.
func (d *DB) Settings(ctx context.Context) ([]domain.GuildSettings, error) {
	cols, err := d.columns(ctx, "guild_settings")
	if err != nil || len(cols) == 0 {
		return nil, err
	}
	q := `SELECT guild_id, log_channel_id, 0 FROM guild_settings ORDER BY guild_id`
	if cols["active"] {
		q = `SELECT guild_id, log_channel_id, active FROM guild_settings ORDER BY guild_id`
	}

	rows, err := d.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("read guild_settings: %w", err)
	}
	defer rows.Close()

	var out []domain.GuildSettings
	for rows.Next() {
		var guild, channel, active int64
		if err := rows.Scan(&guild, &channel, &active); err != nil {
			return nil, fmt.Errorf("read guild_settings: %w", err)
		}
		out = append(out, domain.GuildSettings{
			GuildID:    domain.GuildID(guild),
			LogChannel: domain.ChannelID(channel),
			Active:     active != 0,
		})
	}
	return out, rows.Err()
}

func (d *DB) LastJoins(ctx context.Context) ([]Stamp, error) {
	return d.stamps(ctx, "member_last_join", "last_join_ts")
}

func (d *DB) LastOuts(ctx context.Context) ([]Stamp, error) {
	return d.stamps(ctx, "member_last_out", "last_out_ts")
}

func (d *DB) stamps(ctx context.Context, table, col string) ([]Stamp, error) {
	cols, err := d.columns(ctx, table)
	if err != nil || len(cols) == 0 {
		return nil, err
	}
	rows, err := d.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT guild_id, user_id, %s FROM %s ORDER BY guild_id, user_id`, col, table))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	defer rows.Close()

	var out []Stamp
	for rows.Next() {
		var guild, member, ts int64
		if err := rows.Scan(&guild, &member, &ts); err != nil {
			return nil, fmt.Errorf("read %s: %w", table, err)
		}
		out = append(out, Stamp{GuildID: domain.GuildID(guild), MemberID: domain.MemberID(member), TS: ts})
	}
	return out, rows.Err()
}
