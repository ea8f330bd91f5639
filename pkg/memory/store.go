// Package memory is the cross-session research memory: key findings are
// embedded into a vector collection and recalled by similarity on later
// runs, with entries past the retention window annotated as stale.
//
// The engine consumes the narrow VectorStore interface and never assumes a
// particular backend. The bundled implementation keeps vectors in a local
// SQLite file and scans the collection for cosine matches, which is ample
// for a store of research findings; a dedicated vector database can be
// substituted without touching callers.
package memory

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	_ "modernc.org/sqlite"
)

// contentDedupThreshold is the cosine similarity above which new content is
// considered a near-duplicate of an existing document and skipped.
const contentDedupThreshold = 0.85

// Document is a text to embed and store.
type Document struct {
	ID       string
	Content  string
	Metadata map[string]string
}

// SimilarityResult is one match from a similarity search.
type SimilarityResult struct {
	ID       string
	Content  string
	Score    float64
	Metadata map[string]string
}

// DeduplicationResult reports whether content near-duplicates an existing
// document.
type DeduplicationResult struct {
	IsDuplicate     bool
	MostSimilarID   string
	SimilarityScore float64
}

// VectorStore is the similarity-search surface the engine depends on.
type VectorStore interface {
	// Add embeds and stores documents, skipping near-duplicates. Returns
	// the number actually added.
	Add(ctx context.Context, docs []Document) (int, error)

	// Search returns up to n matches ordered by descending similarity.
	// n <= 0 means no limit. A non-nil filter restricts matches to
	// documents whose metadata contains every given key/value pair.
	Search(ctx context.Context, query string, n int, filter map[string]string) ([]SimilarityResult, error)

	// CheckDuplicate compares content against the closest stored document.
	CheckDuplicate(ctx context.Context, content string) (DeduplicationResult, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// DeleteCollection removes every document in the collection.
	DeleteCollection(ctx context.Context) error
}

// SQLiteStore implements VectorStore on a single-file SQLite database.
// Embeddings are stored as little-endian float32 blobs next to the content
// and metadata they index.
type SQLiteStore struct {
	db         *sql.DB
	embedder   Embedder
	collection string

	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens (creating if needed) the database at path and
// prepares the schema. One writer at a time; WAL mode keeps readers
// unblocked.
func NewSQLiteStore(path, collection string, embedder Embedder) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create memory directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to configure memory database: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS memory_documents (
			id TEXT PRIMARY KEY,
			collection TEXT NOT NULL,
			content TEXT NOT NULL,
			metadata TEXT NOT NULL DEFAULT '{}',
			embedding BLOB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create memory_documents table: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		"CREATE INDEX IF NOT EXISTS idx_memory_documents_collection ON memory_documents(collection)"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create memory collection index: %w", err)
	}

	return &SQLiteStore{db: db, embedder: embedder, collection: collection}, nil
}

// Add embeds and inserts documents, skipping near-duplicates of already
// stored content.
func (s *SQLiteStore) Add(ctx context.Context, docs []Document) (int, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}

	added := 0
	for _, doc := range docs {
		dedup, err := s.CheckDuplicate(ctx, doc.Content)
		if err != nil {
			return added, err
		}
		if dedup.IsDuplicate {
			slog.Debug("Skipping near-duplicate document",
				"doc_id", doc.ID,
				"similar_to", dedup.MostSimilarID,
				"score", dedup.SimilarityScore)
			continue
		}

		vectors, err := s.embedder.Embed(ctx, []string{doc.Content})
		if err != nil {
			return added, fmt.Errorf("failed to embed document: %w", err)
		}
		metadata, err := json.Marshal(doc.Metadata)
		if err != nil {
			return added, fmt.Errorf("failed to marshal document metadata: %w", err)
		}

		result, err := s.db.ExecContext(ctx, `
			INSERT INTO memory_documents (id, collection, content, metadata, embedding)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`, doc.ID, s.collection, doc.Content, string(metadata), encodeVector(vectors[0]))
		if err != nil {
			return added, fmt.Errorf("failed to insert document: %w", err)
		}
		if n, err := result.RowsAffected(); err == nil && n > 0 {
			added++
		}
	}
	return added, nil
}

// Search embeds the query and scans the collection for cosine matches.
func (s *SQLiteStore) Search(ctx context.Context, query string, n int, filter map[string]string) ([]SimilarityResult, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	queryVec := vectors[0]

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content, metadata, embedding
		FROM memory_documents
		WHERE collection = ?
	`, s.collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var results []SimilarityResult
	for rows.Next() {
		var (
			id, content, metadataJSON string
			blob                      []byte
		)
		if err := rows.Scan(&id, &content, &metadataJSON, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}

		metadata := map[string]string{}
		if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
			slog.Warn("Skipping document with unreadable metadata", "doc_id", id)
			continue
		}
		if !matchesFilter(metadata, filter) {
			continue
		}

		results = append(results, SimilarityResult{
			ID:       id,
			Content:  content,
			Score:    cosineSimilarity(queryVec, decodeVector(blob)),
			Metadata: metadata,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document rows: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if n > 0 && len(results) > n {
		results = results[:n]
	}
	return results, nil
}

// CheckDuplicate scores content against its closest stored neighbor.
func (s *SQLiteStore) CheckDuplicate(ctx context.Context, content string) (DeduplicationResult, error) {
	matches, err := s.Search(ctx, content, 1, nil)
	if err != nil {
		return DeduplicationResult{}, err
	}
	if len(matches) == 0 {
		return DeduplicationResult{}, nil
	}
	best := matches[0]
	return DeduplicationResult{
		IsDuplicate:     best.Score >= contentDedupThreshold,
		MostSimilarID:   best.ID,
		SimilarityScore: best.Score,
	}, nil
}

// Count returns the number of documents in the collection.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM memory_documents WHERE collection = ?", s.collection).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// DeleteCollection removes every document in the collection.
func (s *SQLiteStore) DeleteCollection(ctx context.Context) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM memory_documents WHERE collection = ?", s.collection); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}

// Close closes the database. Double-close is a no-op.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func (s *SQLiteStore) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("memory store is closed")
	}
	return nil
}

func matchesFilter(metadata, filter map[string]string) bool {
	for k, want := range filter {
		if metadata[k] != want {
			return false
		}
	}
	return true
}

func encodeVector(vec []float32) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(vec)*4))
	for _, v := range vec {
		var scratch [4]byte
		binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(v))
		buf.Write(scratch[:])
	}
	return buf.Bytes()
}

func decodeVector(blob []byte) []float32 {
	vec := make([]float32, len(blob)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return vec
}
