package sqlite

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"
)

// DriverName is registered once at import time. The connect hook applies the
// pragmas every connection needs: WAL keeps concurrent invocations of the
// tool from tripping over each other, the busy timeout covers short lock
// contention between them.
const DriverName = "sqlite3_quill"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL;",
				"PRAGMA busy_timeout = 5000;",
				"PRAGMA foreign_keys = ON;",
			}
			for _, p := range pragmas {
				if _, err := conn.Exec(p, nil); err != nil {
					return err
				}
			}
			return nil
		},
	})
}
