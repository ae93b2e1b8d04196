package legacy

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/miku-logger/internal/domain"
)

// newLegacyDB crea una base con el esquema viejo. withActive=false simula
// una base anterior a la columna active.
func newLegacyDB(t *testing.T, withActive bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "miku.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	settings := `CREATE TABLE guild_settings (guild_id INTEGER PRIMARY KEY, log_channel_id INTEGER NOT NULL)`
	if withActive {
		settings = `CREATE TABLE guild_settings (guild_id INTEGER PRIMARY KEY, log_channel_id INTEGER NOT NULL, active INTEGER NOT NULL DEFAULT 0)`
	}
	stmts := []string{
		settings,
		`CREATE TABLE member_last_join (guild_id INTEGER NOT NULL, user_id INTEGER NOT NULL, last_join_ts INTEGER NOT NULL, PRIMARY KEY (guild_id, user_id))`,
		`CREATE TABLE member_last_out (guild_id INTEGER NOT NULL, user_id INTEGER NOT NULL, last_out_ts INTEGER NOT NULL, PRIMARY KEY (guild_id, user_id))`,
		`INSERT INTO member_last_join VALUES (100, 7, 1000), (200, 8, 1500)`,
		`INSERT INTO member_last_out VALUES (100, 7, 2000)`,
	}
	if withActive {
		stmts = append(stmts, `INSERT INTO guild_settings VALUES (100, 55, 1), (200, 66, 0)`)
	} else {
		stmts = append(stmts, `INSERT INTO guild_settings VALUES (100, 55), (200, 66)`)
	}
	for _, q := range stmts {
		_, err := db.Exec(q)
		require.NoError(t, err, q)
	}
	return path
}

func TestReadSettings(t *testing.T) {
	ctx := context.Background()

	d, err := Open(newLegacyDB(t, true))
	require.NoError(t, err)
	defer d.Close()
	got, err := d.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.GuildSettings{
		{GuildID: 100, LogChannel: 55, Active: true},
		{GuildID: 200, LogChannel: 66},
	}, got)

	old, err := Open(newLegacyDB(t, false))
	require.NoError(t, err)
	defer old.Close()
	got, err = old.Settings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].Active)
	assert.False(t, got[1].Active)
}

func TestReadStamps(t *testing.T) {
	ctx := context.Background()
	d, err := Open(newLegacyDB(t, true))
	require.NoError(t, err)
	defer d.Close()

	joins, err := d.LastJoins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Stamp{{100, 7, 1000}, {200, 8, 1500}}, joins)

	outs, err := d.LastOuts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Stamp{{100, 7, 2000}}, outs)
}

func TestMissingTablesReadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE unrelated (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	d, err := Open(path)
	require.NoError(t, err)
	defer d.Close()

	s, err := d.Settings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s)
	j, err := d.LastJoins(context.Background())
	require.NoError(t, err)
	assert.Empty(t, j)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.db"))
	assert.Error(t, err)
}

type allowSet map[domain.GuildID]bool

func (a allowSet) IsAllowed(g domain.GuildID) bool { return a[g] }

type sink struct {
	settings []domain.GuildSettings
	joins    []Stamp
	outs     []Stamp
	fail     error
}

func (s *sink) Upsert(_ context.Context, gs domain.GuildSettings) error {
	if s.fail != nil {
		return s.fail
	}
	s.settings = append(s.settings, gs)
	return nil
}

func (s *sink) SetLastJoin(_ context.Context, g domain.GuildID, m domain.MemberID, ts int64) error {
	s.joins = append(s.joins, Stamp{g, m, ts})
	return nil
}

func (s *sink) SetLastOut(_ context.Context, g domain.GuildID, m domain.MemberID, ts int64) error {
	s.outs = append(s.outs, Stamp{g, m, ts})
	return nil
}

func TestImporterFiltersByAllowlist(t *testing.T) {
	d, err := Open(newLegacyDB(t, true))
	require.NoError(t, err)
	defer d.Close()

	dst := &sink{}
	rep, err := NewImporter(dst, dst, allowSet{100: true}, nil).Run(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, Report{Settings: 1, Joins: 1, Outs: 1, Skipped: 2}, rep)
	assert.Equal(t, []domain.GuildSettings{{GuildID: 100, LogChannel: 55, Active: true}}, dst.settings)
	assert.Equal(t, []Stamp{{100, 7, 1000}}, dst.joins)
	assert.Equal(t, []Stamp{{100, 7, 2000}}, dst.outs)
}

func TestImporterDryRun(t *testing.T) {
	d, err := Open(newLegacyDB(t, true))
	require.NoError(t, err)
	defer d.Close()

	dst := &sink{}
	im := NewImporter(dst, dst, allowSet{100: true, 200: true}, nil)
	im.DryRun = true
	rep, err := im.Run(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, Report{Settings: 2, Joins: 2, Outs: 1}, rep)
	assert.Empty(t, dst.settings)
	assert.Empty(t, dst.joins)
}

func TestImporterStopsOnWriteError(t *testing.T) {
	d, err := Open(newLegacyDB(t, true))
	require.NoError(t, err)
	defer d.Close()

	boom := errors.New("db down")
	dst := &sink{fail: boom}
	_, err = NewImporter(dst, dst, allowSet{100: true}, nil).Run(context.Background(), d)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, dst.joins)
}
