package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
)

// QueryLog — журнал запросов графика в таблице trend_queries
type QueryLog struct {
	db *pgxpool.Pool
}

func NewQueryLog(db *pgxpool.Pool) *QueryLog {
	return &QueryLog{db: db}
}

// EnsureSchema создаёт таблицу, если её ещё нет
func (r *QueryLog) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS trend_queries (
			id          UUID PRIMARY KEY,
			search_term TEXT        NOT NULL,
			coin_symbol TEXT        NOT NULL,
			outcome     TEXT        NOT NULL,
			reason      TEXT        NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS trend_queries_created_at_idx ON trend_queries (created_at DESC);
	`
	_, err := r.db.Exec(ctx, query)
	return err
}

// SaveQuery — сохранить запись; повтор с тем же id игнорируется
func (r *QueryLog) SaveQuery(ctx context.Context, rec domain.QueryRecord) error {
	const query = `
		INSERT INTO trend_queries (id, search_term, coin_symbol, outcome, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.SearchTerm, rec.CoinSymbol, string(rec.Outcome), rec.Reason, rec.CreatedAt)
	return err
}

// RecentQueries — последние limit записей, новые первыми
func (r *QueryLog) RecentQueries(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	const query = `
		SELECT id::text, search_term, coin_symbol, outcome, reason, created_at
		FROM trend_queries
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.QueryRecord{}
	for rows.Next() {
		var (
			rec     domain.QueryRecord
			outcome string
		)
		if err := rows.Scan(&rec.ID, &rec.SearchTerm, &rec.CoinSymbol, &outcome, &rec.Reason, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Outcome = domain.ResultKind(outcome)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteQueriesBefore удаляет записи старше cutoff, возвращает число удалённых строк
func (r *QueryLog) DeleteQueriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM trend_queries WHERE created_at < $1`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
