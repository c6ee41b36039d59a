package storage

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

import (
	"context"
	"errors"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectCorrupt marks a stored payload the backend cannot decode.
	ErrObjectCorrupt = errors.New("object corrupt")
)

// BlobStorage stores opaque documents under string keys. Write replaces the
// whole object.
type BlobStorage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Quarantiner is implemented by backends that can set an unreadable object
// aside instead of letting the next Write overwrite it.
type Quarantiner interface {
	Quarantine(ctx context.Context, key string) (string, error)
}
