package chunking_test

import (
	"strings"
	"testing"

	"askdoc/src/core/chunking"
)

func TestSplitterDeterminism(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 120)
	s := chunking.NewSplitter(500, 50)

	first, err := s.Split(text)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	second, err := s.Split(text)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Split() chunk counts differ between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Split() chunk %d differs between runs", i)
		}
	}
}

func TestSplitterSizeBound(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		chunkSize int
	}{
		{
			name:      "plain prose",
			text:      strings.Repeat("all work and no play makes jack a dull boy. ", 200),
			chunkSize: 400,
		},
		{
			name:      "paragraph breaks",
			text:      strings.Repeat("first paragraph here.\n\nsecond paragraph there.\n\n", 80),
			chunkSize: 300,
		},
		{
			name:      "no boundaries at all",
			text:      strings.Repeat("x", 5000),
			chunkSize: 1000,
		},
		{
			name:      "short text single chunk",
			text:      "just one small piece",
			chunkSize: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := chunking.NewSplitter(tt.chunkSize, 0)
			pieces, err := s.Split(tt.text)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if len(pieces) == 0 {
				t.Fatal("Split() returned no chunks")
			}
			for i, piece := range pieces {
				if len(piece) > tt.chunkSize {
					t.Errorf("chunk %d is %d chars, want <= %d", i, len(piece), tt.chunkSize)
				}
			}
		})
	}
}

func TestSplitterFiveThousandCharDocument(t *testing.T) {
	doc := strings.Repeat("abcdefghi ", 500) // 5000 characters of word-separated prose
	s := chunking.NewSplitter(2000, 0)

	pieces, err := s.Split(doc)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(pieces) != 3 {
		t.Fatalf("Split() produced %d chunks, want 3", len(pieces))
	}
	for i, piece := range pieces {
		if len(piece) > 2000 {
			t.Errorf("chunk %d is %d chars, want <= 2000", i, len(piece))
		}
	}

	// Order-preserving coverage: joining on the word boundary restores
	// the document.
	joined := strings.Join(pieces, " ")
	if joined != strings.TrimSpace(doc) {
		t.Errorf("joined chunks are %d chars, want %d", len(joined), len(strings.TrimSpace(doc)))
	}
}

func TestSplitDocumentProvenance(t *testing.T) {
	s := chunking.NewSplitter(50, 0)
	set, err := s.SplitDocument("documents/guide.txt", []byte("alpha beta gamma delta epsilon zeta eta theta iota kappa"))
	if err != nil {
		t.Fatalf("SplitDocument() error = %v", err)
	}

	if set.Metadata.Source != "documents/guide.txt" {
		t.Errorf("Metadata.Source = %q, want %q", set.Metadata.Source, "documents/guide.txt")
	}
	if set.Metadata.ChunkSize != 50 {
		t.Errorf("Metadata.ChunkSize = %d, want 50", set.Metadata.ChunkSize)
	}
	if set.Count() < 2 {
		t.Fatalf("SplitDocument() produced %d chunks, want at least 2", set.Count())
	}
	for i, chunk := range set.Chunks {
		if chunk.Index != i {
			t.Errorf("chunk %d has index %d", i, chunk.Index)
		}
		if chunk.Source != "documents/guide.txt" {
			t.Errorf("chunk %d has source %q, want %q", i, chunk.Source, "documents/guide.txt")
		}
	}
}

func TestSplitDocumentEmpty(t *testing.T) {
	s := chunking.NewSplitter(2000, 200)
	set, err := s.SplitDocument("documents/empty.txt", nil)
	if err != nil {
		t.Fatalf("SplitDocument() error = %v", err)
	}
	if set.Count() != 0 {
		t.Errorf("Count() = %d, want 0", set.Count())
	}
}
