package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/shortener/internal/entity"
)

func TestIsUniqueViolationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation error",
			err:  &pgconn.PgError{Code: uniqueViolationErrCode},
			want: true,
		},
		{
			name: "wrapped unique violation error",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationErrCode}),
			want: true,
		},
		{
			name: "not unique violation error",
			err:  &pgconn.PgError{Code: "unknown error code"},
			want: false,
		},
		{
			name: "not PgError",
			err:  errors.New("unknown error"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolationError(tt.err))
		})
	}
}

type URLRepositoryTestSuite struct {
	suite.Suite
	errUnknown error
	columns    []string
	mock       sqlmock.Sqlmock
	repo       *URLRepository
}

func (suite *URLRepositoryTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.columns = []string{"id", "target_url", "key", "secret_key", "is_active", "clicks", "created_at", "updated_at"}
}

func (suite *URLRepositoryTestSuite) SetupSubTest() {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	db := sqlx.NewDb(mockDB, "sqlmock")
	suite.T().Cleanup(func() {
		db.Close()
	})

	suite.mock = mock
	suite.repo = NewURLRepository(db)
}

func (suite *URLRepositoryTestSuite) TearDownSubTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *URLRepositoryTestSuite) row(isActive bool, clicks int64) *sqlmock.Rows {
	return sqlmock.NewRows(suite.columns).
		AddRow(1, "https://example.com", "ABCDE", "SECRET12", isActive, clicks, time.Time{}, time.Time{})
}

func (suite *URLRepositoryTestSuite) TestSave() {
	suite.Run("key exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("ABCDE", "SECRET12", "https://example.com").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode})

		url, err := suite.repo.Save(context.Background(), "ABCDE", "SECRET12", "https://example.com")

		suite.ErrorIs(err, entity.ErrKeyExists)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("ABCDE", "SECRET12", "https://example.com").
			WillReturnError(suite.errUnknown)

		url, err := suite.repo.Save(context.Background(), "ABCDE", "SECRET12", "https://example.com")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("ABCDE", "SECRET12", "https://example.com").
			WillReturnRows(suite.row(true, 0))

		url, err := suite.repo.Save(context.Background(), "ABCDE", "SECRET12", "https://example.com")

		suite.NoError(err)
		suite.Equal(&entity.URL{
			ID:        1,
			TargetURL: "https://example.com",
			Key:       "ABCDE",
			SecretKey: "SECRET12",
			IsActive:  true,
		}, url)
	})
}

func (suite *URLRepositoryTestSuite) TestExistsByKey() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("ABCDE").
			WillReturnError(suite.errUnknown)

		exists, err := suite.repo.ExistsByKey(context.Background(), "ABCDE")

		suite.ErrorIs(err, suite.errUnknown)
		suite.False(exists)
	})

	suite.Run("exists", func() {
		suite.mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("ABCDE").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := suite.repo.ExistsByKey(context.Background(), "ABCDE")

		suite.NoError(err)
		suite.True(exists)
	})

	suite.Run("not exists", func() {
		suite.mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("ABCDE").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := suite.repo.ExistsByKey(context.Background(), "ABCDE")

		suite.NoError(err)
		suite.False(exists)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveActiveByKey() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE key = (.+) AND is_active`).
			WithArgs("ABCDE").
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo.RetrieveActiveByKey(context.Background(), "ABCDE")

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE key = (.+) AND is_active`).
			WithArgs("ABCDE").
			WillReturnError(suite.errUnknown)

		url, err := suite.repo.RetrieveActiveByKey(context.Background(), "ABCDE")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE key = (.+) AND is_active`).
			WithArgs("ABCDE").
			WillReturnRows(suite.row(true, 3))

		url, err := suite.repo.RetrieveActiveByKey(context.Background(), "ABCDE")

		suite.NoError(err)
		suite.Equal("ABCDE", url.Key)
		suite.Equal(int64(3), url.Clicks)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveActiveBySecretKey() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE secret_key = (.+) AND is_active`).
			WithArgs("SECRET12").
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo.RetrieveActiveBySecretKey(context.Background(), "SECRET12")

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE secret_key = (.+) AND is_active`).
			WithArgs("SECRET12").
			WillReturnRows(suite.row(true, 0))

		url, err := suite.repo.RetrieveActiveBySecretKey(context.Background(), "SECRET12")

		suite.NoError(err)
		suite.Equal("SECRET12", url.SecretKey)
	})
}

func (suite *URLRepositoryTestSuite) TestIncrementClicks() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET clicks = clicks \+ 1`).
			WithArgs(int64(1)).
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo.IncrementClicks(context.Background(), 1)

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET clicks = clicks \+ 1`).
			WithArgs(int64(1)).
			WillReturnError(suite.errUnknown)

		url, err := suite.repo.IncrementClicks(context.Background(), 1)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET clicks = clicks \+ 1`).
			WithArgs(int64(1)).
			WillReturnRows(suite.row(true, 1))

		url, err := suite.repo.IncrementClicks(context.Background(), 1)

		suite.NoError(err)
		suite.Equal(int64(1), url.Clicks)
	})
}

func (suite *URLRepositoryTestSuite) TestDeactivate() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET is_active = FALSE`).
			WithArgs(int64(1)).
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo.Deactivate(context.Background(), 1)

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET is_active = FALSE`).
			WithArgs(int64(1)).
			WillReturnRows(suite.row(false, 2))

		url, err := suite.repo.Deactivate(context.Background(), 1)

		suite.NoError(err)
		suite.False(url.IsActive)
		suite.Equal(int64(2), url.Clicks)
	})
}

func TestURLRepository(t *testing.T) {
	suite.Run(t, new(URLRepositoryTestSuite))
}
