package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/dbx"
)

type SQLRepository struct {
	db      *sql.DB
	dialect dbx.Dialect
}

func NewSQLRepository(db *sql.DB, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func NewSQLiteRepository(db *sql.DB) *SQLRepository {
	return NewSQLRepository(db, dbx.DialectSQLite)
}

func NewPostgresRepository(db *sql.DB) *SQLRepository {
	return NewSQLRepository(db, dbx.DialectPostgres)
}

func (r *SQLRepository) Get(ctx context.Context, key string) ([]byte, error) {
	return r.get(ctx, r.db, key, false)
}

func (r *SQLRepository) get(ctx context.Context, q dbx.DBTX, key string, forUpdate bool) ([]byte, error) {
	query := `SELECT value FROM metadata WHERE key = ?`
	if forUpdate && r.dialect == dbx.DialectPostgres {
		query += ` FOR UPDATE`
	}

	var value []byte
	err := q.QueryRowContext(ctx, r.dialect.Rebind(query), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.set(ctx, r.db, key, value)
}

func (r *SQLRepository) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, r.dialect.Rebind(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`), key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM metadata WHERE key = ?`), key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := r.get(ctx, tx, key, true)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		return r.set(ctx, tx, key, next)
	})
}
