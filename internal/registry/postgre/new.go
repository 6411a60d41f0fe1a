package postgre

import (
	"database/sql"
	"fmt"

	"forge-events/internal/registry"
	"forge-events/pkg/log"
)

type implDirectory struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Directory.
func New(db *sql.DB, l log.Logger) registry.Directory {
	if db == nil {
		panic("registry/postgre: db is required")
	}
	return &implDirectory{db: db, l: l}
}

func (r *implDirectory) dsn(method string) string {
	return fmt.Sprintf("registry/postgre.%s", method)
}
