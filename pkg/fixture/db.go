package fixture

import (
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// ErrNoDatabase is returned by DB when the environment has no Database DSN.
var ErrNoDatabase = errors.New("no database configured for this environment")

type dbHandle struct {
	once sync.Once
	db   *sql.DB
	err  error
}

// DB returns a connection pool for the environment's MySQL DSN, opened
// and pinged on first use. Scenarios use it to verify server side effects.
func (f *Fixture) DB() (*sql.DB, error) {
	if f.opts.Database == "" {
		return nil, ErrNoDatabase
	}
	f.db.once.Do(func() {
		db, err := sql.Open("mysql", f.opts.Database)
		if err != nil {
			f.db.err = errors.Wrap(err, "open database")
			return
		}
		if err := db.PingContext(f.ctx); err != nil {
			db.Close()
			f.db.err = errors.Wrap(err, "ping database")
			return
		}
		f.db.db = db
	})
	return f.db.db, f.db.err
}

func (h *dbHandle) close() error {
	if h.db == nil {
		return nil
	}
	return h.db.Close()
}
