package persistence

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// sqliteDriverName is the go-sqlite3 driver with the casefold() SQL function.
const sqliteDriverName = "sqlite3_movie_catalog"

// SQLite's LOWER() only folds ASCII letters.
const sqliteCaseFoldFunc = "casefold"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(sqliteCaseFoldFunc, strings.ToLower, true)
		},
	})
}
