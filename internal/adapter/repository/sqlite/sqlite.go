// Package sqlite stores URLs in a local SQLite file or in a remote libsql database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shortener/internal/entity"
	"modernc.org/sqlite"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	sqlite3 "modernc.org/sqlite/lib"
)

const schema = `
CREATE TABLE IF NOT EXISTS urls (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	target_url TEXT NOT NULL,
	key TEXT NOT NULL,
	secret_key TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT 1,
	clicks INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS urls_key_idx ON urls(key);
CREATE UNIQUE INDEX IF NOT EXISTS urls_secret_key_idx ON urls(secret_key);
`

// DriverName picks the libsql driver for Turso URLs and the local driver otherwise.
func DriverName(dsn string) string {
	if strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "wss://") {
		return "libsql"
	}
	return "sqlite"
}

// Open connects to dsn and creates the schema if it is missing.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	const op = "adapter.repository.sqlite.Open"

	driver := DriverName(dsn)

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}

	if driver == "sqlite" {
		// One writer at a time; concurrent writers would otherwise see SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to create schema: %w", op, err)
	}

	return db, nil
}

func isUniqueViolationError(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	// libsql only reports the message.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type urlDB struct {
	ID        int64     `db:"id"`
	TargetURL string    `db:"target_url"`
	Key       string    `db:"key"`
	SecretKey string    `db:"secret_key"`
	IsActive  bool      `db:"is_active"`
	Clicks    int64     `db:"clicks"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u *urlDB) toEntity() *entity.URL {
	return &entity.URL{
		ID:        u.ID,
		TargetURL: u.TargetURL,
		Key:       u.Key,
		SecretKey: u.SecretKey,
		IsActive:  u.IsActive,
		URLStats: entity.URLStats{
			Clicks: u.Clicks,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type URLRepository struct {
	db *sqlx.DB
}

func NewURLRepository(db *sqlx.DB) *URLRepository {
	return &URLRepository{db: db}
}

func (r *URLRepository) Save(ctx context.Context, key, secretKey, targetURL string) (*entity.URL, error) {
	const op = "adapter.repository.sqlite.URLRepository.Save"
	const query = `INSERT INTO urls(key, secret_key, target_url) VALUES (?, ?, ?) RETURNING *`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, key, secretKey, targetURL); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrKeyExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into urls table: %w", op, err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) ExistsByKey(ctx context.Context, key string) (bool, error) {
	const op = "adapter.repository.sqlite.URLRepository.ExistsByKey"
	const query = `SELECT COUNT(1) FROM urls WHERE key = ?`

	var n int

	if err := r.db.GetContext(ctx, &n, query, key); err != nil {
		return false, fmt.Errorf("%s: failed to query urls table: %w", op, err)
	}

	return n > 0, nil
}

func (r *URLRepository) RetrieveActiveByKey(ctx context.Context, key string) (*entity.URL, error) {
	const op = "adapter.repository.sqlite.URLRepository.RetrieveActiveByKey"
	const query = `SELECT * FROM urls WHERE key = ? AND is_active = 1`

	return r.retrieve(ctx, op, query, key)
}

func (r *URLRepository) RetrieveActiveBySecretKey(ctx context.Context, secretKey string) (*entity.URL, error) {
	const op = "adapter.repository.sqlite.URLRepository.RetrieveActiveBySecretKey"
	const query = `SELECT * FROM urls WHERE secret_key = ? AND is_active = 1`

	return r.retrieve(ctx, op, query, secretKey)
}

func (r *URLRepository) IncrementClicks(ctx context.Context, id int64) (*entity.URL, error) {
	const op = "adapter.repository.sqlite.URLRepository.IncrementClicks"
	const query = `UPDATE urls SET clicks = clicks + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND is_active = 1 RETURNING *`

	return r.retrieve(ctx, op, query, id)
}

func (r *URLRepository) Deactivate(ctx context.Context, id int64) (*entity.URL, error) {
	const op = "adapter.repository.sqlite.URLRepository.Deactivate"
	const query = `UPDATE urls SET is_active = 0, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND is_active = 1 RETURNING *`

	return r.retrieve(ctx, op, query, id)
}

func (r *URLRepository) retrieve(ctx context.Context, op, query string, args ...any) (*entity.URL, error) {
	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from urls table: %w", op, err)
	}

	return url.toEntity(), nil
}
