package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"saasboard/internal/logger"
)

// ErrNotFound is returned when a tenant-scoped lookup matches no row.
var ErrNotFound = errors.New("record not found")

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// DB is the subset of pgx shared by *pgxpool.Pool, pgx.Tx and pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store groups the tenant-scoped repositories over one database handle.
// Repositories obtained inside WithTx share the transaction.
type Store interface {
	Tenants() TenantRepository
	Users() UserRepository
	Projects() ProjectRepository
	Tasks() TaskRepository
	WithTx(ctx context.Context, fn func(tx Store) error) error
}

type pgStore struct {
	db DB
}

func NewStore(db DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Tenants() TenantRepository   { return NewTenantRepo(s.db) }
func (s *pgStore) Users() UserRepository       { return NewUserRepo(s.db) }
func (s *pgStore) Projects() ProjectRepository { return NewProjectRepo(s.db) }
func (s *pgStore) Tasks() TaskRepository       { return NewTaskRepo(s.db) }

// WithTx runs fn inside a transaction. The transaction commits when fn returns
// nil and rolls back otherwise; fn's error is returned unchanged. A panic in fn
// rolls back before it propagates.
func (s *pgStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			rollback(ctx, tx)
			panic(p)
		}
	}()

	if err := fn(&pgStore{db: tx}); err != nil {
		rollback(ctx, tx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Warn("transaction rollback failed", zap.Error(err))
	}
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// ForeignKeyViolation returns the violated constraint name when err is a
// PostgreSQL foreign key violation.
func ForeignKeyViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}
