package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jose-valero/miku-logger/internal/domain"
)

// MemberTimesRepo maneja member_last_join y member_last_out. Son tablas
// independientes: escribir en una nunca toca la otra.
type MemberTimesRepo struct{ db Querier }

func NewMemberTimesRepo(db Querier) *MemberTimesRepo { return &MemberTimesRepo{db: db} }

func (r *MemberTimesRepo) GetLastJoin(ctx context.Context, guildID domain.GuildID, userID domain.MemberID) (int64, error) {
	return r.get(ctx, "get last join", `
SELECT last_join_ts
  FROM member_last_join
 WHERE guild_id = $1 AND user_id = $2
`, guildID, userID)
}

func (r *MemberTimesRepo) SetLastJoin(ctx context.Context, guildID domain.GuildID, userID domain.MemberID, ts int64) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO member_last_join (guild_id, user_id, last_join_ts)
VALUES ($1, $2, $3)
ON CONFLICT (guild_id, user_id) DO UPDATE SET last_join_ts = EXCLUDED.last_join_ts
`, int64(guildID), int64(userID), ts)
	return wrap("set last join", err)
}

func (r *MemberTimesRepo) GetLastOut(ctx context.Context, guildID domain.GuildID, userID domain.MemberID) (int64, error) {
	return r.get(ctx, "get last out", `
SELECT last_out_ts
  FROM member_last_out
 WHERE guild_id = $1 AND user_id = $2
`, guildID, userID)
}

func (r *MemberTimesRepo) SetLastOut(ctx context.Context, guildID domain.GuildID, userID domain.MemberID, ts int64) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO member_last_out (guild_id, user_id, last_out_ts)
VALUES ($1, $2, $3)
ON CONFLICT (guild_id, user_id) DO UPDATE SET last_out_ts = EXCLUDED.last_out_ts
`, int64(guildID), int64(userID), ts)
	return wrap("set last out", err)
}

func (r *MemberTimesRepo) get(ctx context.Context, op, query string, guildID domain.GuildID, userID domain.MemberID) (int64, error) {
	var ts int64
	err := r.db.QueryRow(ctx, query, int64(guildID), int64(userID)).Scan(&ts)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, wrap(op, err)
	}
	return ts, nil
}
