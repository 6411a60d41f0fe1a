package postgre

import (
	"database/sql"
	"fmt"

	"forge-events/internal/hook/repository"
	"forge-events/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed web-hook store.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("hook/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("hook/repository/postgre.%s", method)
}
