package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB together with everything a repository needs to talk to
// one concrete dialect: the squirrel statement builder with the matching
// placeholder format, the driver error classifier, the id generator and the
// clock used for created_at/updated_at.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	ids                IDGenerator
	clock              func() time.Time
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		ids:                utils.NewUUIDGenerator(),
		clock:              defaultClock,
		logger:             log,
	}
}

// defaultClock returns the current UTC time at microsecond precision, which
// both PostgreSQL and SQLite round-trip without loss.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewDB opens the database selected by the DSN scheme:
//   - postgres:// and postgresql:// open PostgreSQL through pgx
//   - sqlite://<path>, file:<path> and :memory: open SQLite
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return NewConnectSQLite(ctx, dsn, log)
	default:
		log.Error().Str("func", "NewDB").Msg("unsupported DSN scheme")
		return nil, fmt.Errorf("%w: expected postgres:// or sqlite://", ErrUnsupportedDSN)
	}
}

// Dialect returns the migrations dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// wrapError wraps a driver error under op. Errors the dialect classifies as
// retryable are also marked with [ErrStoreBusy].
func (db *DB) wrapError(op, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", op, ErrStoreBusy, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}

// expectAffected returns notFound when result reports zero affected rows.
func (db *DB) expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return db.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

func (db *DB) isForeignKeyViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsForeignKeyViolation(err)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
