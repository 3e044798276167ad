package chunking

import (
	"context"
	"errors"
	"fmt"

	"askdoc/src/log"
)

// Service defines the interface for document processing operations
type Service interface {
	Process(ctx context.Context, documentKey, question string) (*Result, error)
}

// Result summarizes one pipeline invocation. The Answer is always a
// chunk-count summary: the question is part of the request contract but
// is not used to filter, rank or answer.
type Result struct {
	DocumentKey string `json:"documentKey"`
	ChunkCount  int    `json:"chunkCount"`
	Cached      bool   `json:"cached"`
	Answer      string `json:"answer"`
}

type pipelineService struct {
	cache     ChunkCache
	documents DocumentStore
	splitter  *Splitter
}

func NewService(cache ChunkCache, documents DocumentStore, splitter *Splitter) Service {
	return &pipelineService{
		cache:     cache,
		documents: documents,
		splitter:  splitter,
	}
}

// Process serves the chunk set for a document: cached when one exists,
// freshly split and persisted otherwise. Each invocation is independent
// and stateless; there is no retry.
func (s *pipelineService) Process(ctx context.Context, documentKey, question string) (*Result, error) {
	cacheKey := CacheKey(documentKey)
	log.Debug("processing request", "document", documentKey, "cacheKey", cacheKey, "question", question)

	exists, err := s.cache.Exists(ctx, cacheKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check chunk cache: %w", err)
	}

	if exists {
		set, err := s.cache.Read(ctx, cacheKey)
		if err != nil {
			return nil, fmt.Errorf("failed to read cached chunk set: %w", err)
		}
		log.Debug("served cached chunk set", "document", documentKey, "chunks", set.Count())
		return cachedResult(documentKey, set), nil
	}

	content, err := s.documents.Fetch(ctx, documentKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %s: %w", documentKey, err)
	}

	set, err := s.splitter.SplitDocument(documentKey, content)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Write(ctx, cacheKey, set); err != nil {
		if errors.Is(err, ErrChunkSetExists) {
			// Lost the create race: another invocation persisted first.
			// Discard the local result and serve the winning entry.
			winner, readErr := s.cache.Read(ctx, cacheKey)
			if readErr != nil {
				return nil, fmt.Errorf("failed to read chunk set after lost write race: %w", readErr)
			}
			log.Info("discarded chunk set after lost write race", "document", documentKey, "chunks", winner.Count())
			return cachedResult(documentKey, winner), nil
		}
		return nil, fmt.Errorf("failed to write chunk set: %w", err)
	}

	log.Info("split document", "document", documentKey, "chunks", set.Count())
	return &Result{
		DocumentKey: documentKey,
		ChunkCount:  set.Count(),
		Cached:      false,
		Answer:      fmt.Sprintf("Split document into %d chunks.", set.Count()),
	}, nil
}

func cachedResult(documentKey string, set *ChunkSet) *Result {
	return &Result{
		DocumentKey: documentKey,
		ChunkCount:  set.Count(),
		Cached:      true,
		Answer:      fmt.Sprintf("Loaded %d chunks from cache.", set.Count()),
	}
}
