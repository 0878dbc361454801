package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shortener/internal/entity"
)

const uniqueViolationErrCode = "23505"

func isUniqueViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolationErrCode
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
	const op = "adapter.repository.postgres.URLRepository.Save"
	const query = `INSERT INTO urls(key, secret_key, target_url) VALUES ($1, $2, $3) RETURNING *`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, key, secretKey, targetURL); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrKeyExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into urls table: %w", op, err)
	}

	return url.toEntity(), nil
}

// ExistsByKey checks inactive records too, keys are never reused.
func (r *URLRepository) ExistsByKey(ctx context.Context, key string) (bool, error) {
	const op = "adapter.repository.postgres.URLRepository.ExistsByKey"
	const query = `SELECT EXISTS(SELECT 1 FROM urls WHERE key = $1)`

	var exists bool

	if err := r.db.GetContext(ctx, &exists, query, key); err != nil {
		return false, fmt.Errorf("%s: failed to query urls table: %w", op, err)
	}

	return exists, nil
}

func (r *URLRepository) RetrieveActiveByKey(ctx context.Context, key string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveActiveByKey"
	const query = `SELECT * FROM urls WHERE key = $1 AND is_active`

	return r.retrieve(ctx, op, query, key)
}

func (r *URLRepository) RetrieveActiveBySecretKey(ctx context.Context, secretKey string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveActiveBySecretKey"
	const query = `SELECT * FROM urls WHERE secret_key = $1 AND is_active`

	return r.retrieve(ctx, op, query, secretKey)
}

func (r *URLRepository) IncrementClicks(ctx context.Context, id int64) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.IncrementClicks"
	const query = `UPDATE urls SET clicks = clicks + 1, updated_at = NOW() WHERE id = $1 AND is_active RETURNING *`

	return r.retrieve(ctx, op, query, id)
}

func (r *URLRepository) Deactivate(ctx context.Context, id int64) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.Deactivate"
	const query = `UPDATE urls SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active RETURNING *`

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
