package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	pq "github.com/lib/pq"
)

// CacheRepo guarda respuestas de la API de stats (JSON ya serializado) en
// response_cache. Las entradas vencen por TTL al leer; Prune las borra.
type CacheRepo struct {
	db  *sql.DB
	ttl time.Duration
}

func NewCacheRepo(db *sql.DB, ttl time.Duration) *CacheRepo {
	return &CacheRepo{db: db, ttl: ttl}
}

func (r *CacheRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var body []byte
	err := r.db.QueryRowContext(ctx, `
SELECT body
  FROM response_cache
 WHERE cache_key = $1 AND fetched_at > now() - make_interval(secs => $2)
`, key, r.ttl.Seconds()).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

// Set: upsert por cache_key; refresca fetched_at.
func (r *CacheRepo) Set(ctx context.Context, key string, val []byte) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO response_cache (cache_key, body, fetched_at)
VALUES ($1, $2, now())
ON CONFLICT (cache_key) DO UPDATE SET
  body       = EXCLUDED.body,
  fetched_at = EXCLUDED.fetched_at
`, key, val)
	return err
}

func (r *CacheRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM response_cache WHERE cache_key = ANY($1)`, pq.Array(keys))
	return err
}

// Prune borra entradas con fetched_at anterior a olderThan y devuelve cuantas.
func (r *CacheRepo) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM response_cache WHERE fetched_at < now() - make_interval(secs => $1)`, olderThan.Seconds())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
