package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/avant-dev/usersvc/internal/config"
	"github.com/avant-dev/usersvc/internal/domain/invoice"
	"github.com/avant-dev/usersvc/internal/domain/user"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

// OpenPostgres connects via the postgres dialector and migrates the
// schema.
func OpenPostgres(cfg config.PostgresConfig, log *logger.Logger) (*gorm.DB, error) {
	log.Info("Connecting to Postgres...", "host", cfg.Host, "db", cfg.Name)
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// OpenSQLite opens (creating if needed) the sqlite file and migrates
// the schema. Handy for single-node deployments and local runs.
func OpenSQLite(cfg config.SQLiteConfig, log *logger.Logger) (*gorm.DB, error) {
	log.Info("Opening SQLite database...", "path", cfg.Path)
	gdb, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", cfg.Path, err)
	}
	if err := migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

func migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&user.User{}, &invoice.Invoice{}); err != nil {
		return fmt.Errorf("auto migration: %w", err)
	}
	return nil
}
