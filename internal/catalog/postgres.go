package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// titleNamespace scopes the ids Seed derives from titles.
var titleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("fluxview:catalog:title"))

// Connect opens a pgx pool for the catalog database.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse catalog dsn: %w", err)
	}
	cfg.MinConns = 0
	cfg.MaxConns = 4
	cfg.MaxConnIdleTime = 5 * time.Minute
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect catalog: %w", err)
	}
	return pool, nil
}

// Postgres predicts from the media table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres predictor.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureTable creates the media table if it doesn't exist.
func (p *Postgres) EnsureTable(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS media (
			id    TEXT PRIMARY KEY,
			title TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create media table: %w", err)
	}
	return nil
}

// Add inserts a title, ignoring an existing id.
func (p *Postgres) Add(ctx context.Context, id, title string) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO media (id, title) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING`, id, title)
	if err != nil {
		return fmt.Errorf("add media %s: %w", id, err)
	}
	return nil
}

// Seed adds titles that are not in the table yet. Each title's id is derived
// from its lower-cased text, so seeding the same list twice adds nothing.
// It returns how many titles were offered.
func (p *Postgres) Seed(ctx context.Context, titles []string) (int, error) {
	n := 0
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if err := p.Add(ctx, TitleID(t), t); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// TitleID returns the stable media id Seed uses for title.
func TitleID(title string) string {
	key := strings.ToLower(strings.TrimSpace(title))
	return uuid.NewSHA1(titleNamespace, []byte(key)).String()
}

// Predict implements Predictor.
func (p *Postgres) Predict(ctx context.Context, query string, limit int) ([]string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	escaped := escapeLike(q)
	rows, err := p.pool.Query(ctx, `
		SELECT title FROM media
		WHERE title ILIKE $1
		ORDER BY (title ILIKE $2) DESC, lower(title)
		LIMIT $3`, "%"+escaped+"%", escaped+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read predictions: %w", err)
	}
	return titles, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes the LIKE wildcards in s.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
