// Package chunking splits documents into bounded chunks and caches the
// result in object storage so repeated requests never re-split.
package chunking

import (
	"encoding/json"
	"fmt"
)

// Metadata is the snapshot describing how a chunk set was produced.
type Metadata struct {
	Source       string `json:"source"`
	ChunkSize    int    `json:"chunk_size"`
	ChunkOverlap int    `json:"chunk_overlap"`
}

// Chunk is a bounded slice of a document's text plus its provenance.
type Chunk struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Index   int    `json:"index"`
}

// ChunkSet is the ordered result of splitting one document. For a given
// document content and configuration it is fully deterministic: it
// carries no timestamps, random identifiers or other per-run state.
type ChunkSet struct {
	Metadata Metadata `json:"metadata"`
	Chunks   []Chunk  `json:"chunks"`
}

func (s *ChunkSet) Count() int {
	return len(s.Chunks)
}

// EncodeChunkSet serializes a chunk set into the payload persisted at
// its cache key.
func EncodeChunkSet(set *ChunkSet) ([]byte, error) {
	data, err := json.Marshal(set)
	if err != nil {
		return nil, &SerializationError{Key: set.Metadata.Source, Err: err}
	}
	return data, nil
}

// DecodeChunkSet parses a persisted payload back into a chunk set. A
// payload that does not carry a chunks field is malformed, even when it
// is valid JSON.
func DecodeChunkSet(key string, data []byte) (*ChunkSet, error) {
	var set ChunkSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, &SerializationError{Key: key, Err: err}
	}
	if set.Chunks == nil {
		return nil, &SerializationError{Key: key, Err: fmt.Errorf("payload has no chunks field")}
	}
	return &set, nil
}
