package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/heartrisk/internal/client/migrations"
	"github.com/dmitrijs2005/heartrisk/internal/dbx"
	"github.com/dmitrijs2005/heartrisk/internal/filex"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating it and its directory if needed) the SQLite
// file at path and migrates it. A single open connection serializes writers and keeps
// ":memory:" databases from splitting across connections.
func InitDatabase(ctx context.Context, path string) (*sqlx.DB, error) {
	if !filex.IsMemoryPath(path) {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Open("sqlite", dbx.SQLiteDSN(path))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return db, nil
}
