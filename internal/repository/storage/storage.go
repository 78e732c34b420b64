package storage

import (
	"context"
	"errors"
	"fmt"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

var (
	ErrKeyNotFound   = errors.New("key not found")
	ErrInvalidKey    = errors.New("invalid key")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Storage - durable key-value store. Values are opaque documents.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Options struct {
	Driver     string
	DataDir    string
	SQLitePath string
}

// Open - returns the storage selected by opts.Driver.
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Driver {
	case DriverFile, "":
		return NewFileStorage(opts.DataDir)
	case DriverSQLite:
		return NewSQLiteStorage(ctx, opts.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, opts.Driver)
	}
}
