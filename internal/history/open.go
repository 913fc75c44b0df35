package history

import (
	"context"
	"fmt"
)

// Backends accepted by Open.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Options selects and configures a backend.
type Options struct {
	Driver string
	Path   string // file backend
	DSN    string // postgres backend
}

// Open returns the Store named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("history: file driver needs a path")
		}
		return OpenFile(opts.Path)
	case DriverPostgres:
		if opts.DSN == "" {
			return nil, fmt.Errorf("history: postgres driver needs a DSN")
		}
		return OpenPostgres(ctx, opts.DSN)
	default:
		return nil, fmt.Errorf("history: unknown driver %q", opts.Driver)
	}
}
