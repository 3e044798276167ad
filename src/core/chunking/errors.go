package chunking

import (
	"errors"
	"fmt"
)

var (
	// ErrChunkSetNotFound reports a cache miss. It drives the cold path
	// and is never surfaced to callers as a failure.
	ErrChunkSetNotFound = errors.New("Chunk set not found")
	// ErrChunkSetExists reports a lost create race: another invocation
	// persisted a chunk set between the existence check and the write.
	ErrChunkSetExists = errors.New("Chunk set already exists")
	// ErrDocumentNotFound reports a missing source document.
	ErrDocumentNotFound = errors.New("Document not found")
)

// StorageError reports an I/O failure (connectivity, permissions,
// throttling) in the backing object store. It is distinct from a miss:
// a miss is expected, a StorageError is a hard failure.
type StorageError struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// SerializationError reports a chunk set payload that could not be
// encoded or decoded. A malformed cache entry surfaces as this hard
// failure; it is never treated as a miss.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("malformed chunk set payload at %s: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
