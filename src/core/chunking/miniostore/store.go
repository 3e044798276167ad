package miniostore

import (
	"context"
	"errors"

	"askdoc/src/core/chunking"
	"askdoc/src/storage/minioctrl"
)

// Store implements chunking.ChunkCache and chunking.DocumentStore on a
// single MinIO bucket: raw documents live at their document keys, chunk
// sets at the derived cache keys.
type Store struct {
	minioService *minioctrl.MinioService
	bucket       string
}

func NewStore(minioService *minioctrl.MinioService, bucket string) *Store {
	return &Store{
		minioService: minioService,
		bucket:       bucket,
	}
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.minioService.ObjectExists(ctx, s.bucket, key)
	if err != nil {
		return false, s.storageErr("stat", key, err)
	}
	return exists, nil
}

func (s *Store) Read(ctx context.Context, key string) (*chunking.ChunkSet, error) {
	data, err := s.minioService.GetObject(ctx, s.bucket, key)
	if err != nil {
		if errors.Is(err, minioctrl.ErrObjectNotFound) {
			return nil, chunking.ErrChunkSetNotFound
		}
		return nil, s.storageErr("get", key, err)
	}

	return chunking.DecodeChunkSet(key, data)
}

func (s *Store) Write(ctx context.Context, key string, set *chunking.ChunkSet) error {
	data, err := chunking.EncodeChunkSet(set)
	if err != nil {
		return err
	}

	err = s.minioService.PutObjectIfAbsent(ctx, s.bucket, key, data, "application/json")
	if err != nil {
		if errors.Is(err, minioctrl.ErrObjectExists) {
			return chunking.ErrChunkSetExists
		}
		return s.storageErr("put", key, err)
	}

	return nil
}

func (s *Store) Fetch(ctx context.Context, key string) ([]byte, error) {
	data, err := s.minioService.GetObject(ctx, s.bucket, key)
	if err != nil {
		if errors.Is(err, minioctrl.ErrObjectNotFound) {
			return nil, chunking.ErrDocumentNotFound
		}
		return nil, s.storageErr("get", key, err)
	}

	return data, nil
}

func (s *Store) storageErr(op, key string, err error) *chunking.StorageError {
	return &chunking.StorageError{Op: op, Bucket: s.bucket, Key: key, Err: err}
}
