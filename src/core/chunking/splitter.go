package chunking

import (
	"fmt"

	"github.com/tmc/langchaingo/textsplitter"
)

const (
	DefaultChunkSize    = 2000
	DefaultChunkOverlap = 200
)

// Boundaries tried in order: paragraph, line, sentence, word, then a
// hard character cut.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Splitter cuts document text into chunks no larger than chunkSize,
// preferring natural boundaries. Splitting is deterministic: the same
// text and configuration always produce the same chunks.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

func NewSplitter(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = 0
	}

	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

func (s *Splitter) Split(text string) ([]string, error) {
	spliter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(s.chunkSize),
		textsplitter.WithChunkOverlap(s.chunkOverlap),
		textsplitter.WithSeparators(defaultSeparators),
	)

	pieces, err := spliter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to split text: %w", err)
	}

	return pieces, nil
}

// SplitDocument splits raw document content and assembles the chunk set
// with per-chunk provenance and the metadata snapshot.
func (s *Splitter) SplitDocument(key string, content []byte) (*ChunkSet, error) {
	pieces, err := s.Split(string(content))
	if err != nil {
		return nil, err
	}

	chunks := make([]Chunk, 0, len(pieces))
	for i, piece := range pieces {
		chunks = append(chunks, Chunk{
			Content: piece,
			Source:  key,
			Index:   i,
		})
	}

	return &ChunkSet{
		Metadata: Metadata{
			Source:       key,
			ChunkSize:    s.chunkSize,
			ChunkOverlap: s.chunkOverlap,
		},
		Chunks: chunks,
	}, nil
}
