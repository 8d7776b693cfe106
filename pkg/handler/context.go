package handler

// DI for all handlers and models alike.

import (
	"database/sql"
)

type DBContext struct {
	DB        *sql.DB // nil when history is disabled
	BatchJobs *BatchJobManager
	Version   string
}

func (dbctx *DBContext) historyEnabled() bool {
	return dbctx.DB != nil
}
