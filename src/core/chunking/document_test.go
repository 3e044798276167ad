package chunking_test

import (
	"errors"
	"testing"

	"askdoc/src/core/chunking"
)

func TestChunkSetRoundTrip(t *testing.T) {
	set := &chunking.ChunkSet{
		Metadata: chunking.Metadata{
			Source:       "documents/a.txt",
			ChunkSize:    2000,
			ChunkOverlap: 200,
		},
		Chunks: []chunking.Chunk{
			{Content: "first piece", Source: "documents/a.txt", Index: 0},
			{Content: "second piece", Source: "documents/a.txt", Index: 1},
		},
	}

	data, err := chunking.EncodeChunkSet(set)
	if err != nil {
		t.Fatalf("EncodeChunkSet() error = %v", err)
	}

	decoded, err := chunking.DecodeChunkSet("chunks/documents/a.txt.json", data)
	if err != nil {
		t.Fatalf("DecodeChunkSet() error = %v", err)
	}

	if decoded.Count() != 2 {
		t.Errorf("Count() = %d, want 2", decoded.Count())
	}
	if decoded.Metadata != set.Metadata {
		t.Errorf("Metadata = %+v, want %+v", decoded.Metadata, set.Metadata)
	}
	if decoded.Chunks[1].Content != "second piece" {
		t.Errorf("Chunks[1].Content = %q, want %q", decoded.Chunks[1].Content, "second piece")
	}
}

func TestDecodeChunkSetMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "truncated json",
			data: []byte(`{"metadata":{"source":"a"},"chunks":[{"content":"x"`),
		},
		{
			name: "not json",
			data: []byte("plain text, not a chunk set"),
		},
		{
			name: "valid json with wrong shape",
			data: []byte(`{"answer":42}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chunking.DecodeChunkSet("chunks/a.json", tt.data)
			if err == nil {
				t.Fatal("DecodeChunkSet() error = nil, want *SerializationError")
			}
			var serr *chunking.SerializationError
			if !errors.As(err, &serr) {
				t.Errorf("DecodeChunkSet() error = %v, want *SerializationError", err)
			}
		})
	}
}
