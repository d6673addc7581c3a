package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/migrations"
	"github.com/dmitrijs2005/userdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/userdesk/internal/dbx"
	"github.com/dmitrijs2005/userdesk/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Database is the opened local store.
type Database struct {
	DB      *sql.DB
	Dialect dbx.Dialect
}

// Metadata returns the key/value repository over the store.
func (d *Database) Metadata() *metadata.SQLRepository {
	return metadata.NewSQLRepository(d.DB, d.Dialect)
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// DialectFor picks the SQL dialect from a DSN: postgres:// and
// postgresql:// URLs select PostgreSQL, anything else is a SQLite path.
func DialectFor(dsn string) dbx.Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return dbx.DialectPostgres
	}
	return dbx.DialectSQLite
}

func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	dir := "sqlite"
	if dialect == dbx.DialectPostgres {
		dir = "postgres"
	}
	return goose.UpContext(ctx, db, dir)
}

// InitDatabase opens the local store behind dsn and brings its schema up to
// date. SQLite files get their parent directory created on demand.
func InitDatabase(ctx context.Context, dsn string) (*Database, error) {
	dialect := DialectFor(dsn)

	driver := "sqlite"
	if dialect == dbx.DialectPostgres {
		driver = "pgx"
	} else if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if dialect == dbx.DialectSQLite {
		// a single writer avoids SQLITE_BUSY and keeps :memory: on one connection
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Database{DB: db, Dialect: dialect}, nil
}
