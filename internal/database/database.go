package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

// Connect picks the driver from the DSN shape: postgres URLs go to the
// pgx-backed gorm driver, anything else is treated as a SQLite path.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Printf("db: connecting driver=postgres")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Printf("db: connecting driver=sqlite dsn=%s", dsn)

	// The cascade logic does not rely on SQLite enforcing foreign keys.
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
