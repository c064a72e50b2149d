// Package sqlstore provides the SQL implementation of the selection store and
// catalog writer, backed by SQLite or PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/infrastructure/config"
)

// memoryDSN opens a private in-memory SQLite database.
const memoryDSN = ":memory:"

// Repository implements ports.SelectionStore and ports.CatalogWriter.
type Repository struct {
	db      *sqlx.DB
	driver  string
	genders entities.GenderSet
}

// NewRepository opens the database described by cfg. Names may only be
// stored and filtered with genders from the given set.
func NewRepository(cfg config.DatabaseConfig, genders entities.GenderSet) (*Repository, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is required")
	}
	if genders.Empty() {
		return nil, errors.New("at least one gender is required")
	}

	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite, "":
		db, err = sql.Open("sqlite", sqliteDSN(cfg.DSN))
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		if isMemory(cfg.DSN) {
			// Every pooled connection would otherwise see its own empty database.
			db.SetMaxOpenConns(1)
		}
		cfg.Driver = config.DriverSQLite
	case config.DriverPostgres:
		db, err = sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening postgres database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	return NewRepositoryFromDB(db, cfg.Driver, genders), nil
}

// NewRepositoryFromDB wraps an already opened database handle.
func NewRepositoryFromDB(db *sql.DB, driver string, genders entities.GenderSet) *Repository {
	return &Repository{
		db:      sqlx.NewDb(db, driver),
		driver:  driver,
		genders: genders,
	}
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Ping verifies the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// Driver returns the configured driver name.
func (r *Repository) Driver() string {
	return r.driver
}

// sqliteDSN appends the connection pragmas. Pragmas set through the DSN apply
// to every pooled connection, unlike a one-off PRAGMA statement.
func sqliteDSN(dsn string) string {
	pragmas := []string{
		"_pragma=foreign_keys(1)",
		"_pragma=busy_timeout(5000)",
	}
	if !isMemory(dsn) {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(pragmas, "&")
}

func isMemory(dsn string) bool {
	return strings.HasPrefix(dsn, memoryDSN) || strings.Contains(dsn, "mode=memory")
}
