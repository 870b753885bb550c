package store

import (
	"context"
	"fmt"

	"github.com/caner-cetin/amws-order/internal/db"
)

const (
	DriverYAML   = "yaml"
	DriverSQLite = "sqlite"
)

// Open opens the store of the given driver. The returned close func releases
// whatever the backend holds and is never nil.
func Open(ctx context.Context, driver, path, collection string) (Store, func() error, error) {
	noop := func() error { return nil }
	switch driver {
	case DriverYAML:
		f, err := OpenFile(path)
		if err != nil {
			return nil, noop, err
		}
		return f, noop, nil
	case DriverSQLite:
		conn, err := db.Open(path)
		if err != nil {
			return nil, noop, err
		}
		s, err := OpenSQLite(ctx, conn, collection)
		if err != nil {
			conn.Close()
			return nil, noop, err
		}
		return s, conn.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", driver)
	}
}
