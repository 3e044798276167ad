package chunking

import "context"

// ChunkCache persists chunk sets keyed per document.
type ChunkCache interface {
	// Exists reports whether a chunk set is persisted at key. A missing
	// entry is a normal outcome, not an error; only true I/O failures
	// return a non-nil error.
	Exists(ctx context.Context, key string) (bool, error)
	// Read returns the chunk set at key. It fails with
	// ErrChunkSetNotFound when absent, *SerializationError when the
	// stored payload does not decode, and *StorageError on I/O failure.
	Read(ctx context.Context, key string) (*ChunkSet, error)
	// Write persists the fully serialized chunk set in a single
	// operation, so a reader never observes a partial entry. The write
	// is create-only: when an entry already exists it fails with
	// ErrChunkSetExists and leaves the existing entry intact.
	Write(ctx context.Context, key string, set *ChunkSet) error
}

// DocumentStore reads raw source documents.
type DocumentStore interface {
	// Fetch returns the document content at key, ErrDocumentNotFound
	// when the object is absent, or *StorageError on I/O failure.
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// CacheKey returns the storage key of the chunk set derived from a
// document key. Distinct documents always map to distinct cache keys.
func CacheKey(documentKey string) string {
	return "chunks/" + documentKey + ".json"
}
