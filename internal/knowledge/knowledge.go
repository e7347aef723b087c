// Package knowledge is the local answer base consulted by the reference
// backend: short curated answers about the app's sections, matched by
// keyword, with an optional semantic-retrieval path when an embedding
// function is available.
package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	chromem "github.com/philippgille/chromem-go"

	"github.com/domuslabs/cashlens/internal/db"
)

const collectionName = "knowledge"

// minSimilarity gates semantic matches; below it the keyword path decides.
const minSimilarity = float32(0.55)

// Entry is one curated answer row.
type Entry struct {
	ID       string
	Topic    string
	Keywords string // comma-separated match terms
	Answer   string
}

// Base answers questions from the knowledge_base table. When an embedding
// function is provided, answers are retrieved semantically via an in-memory
// vector collection; otherwise a keyword scan decides.
type Base struct {
	db         *db.DB
	collection *chromem.Collection
}

// New creates a Base, seeding the table with the built-in entries when it
// is empty. embed may be nil to disable semantic retrieval.
func New(ctx context.Context, database *db.DB, embed chromem.EmbeddingFunc) (*Base, error) {
	b := &Base{db: database}

	if err := b.seed(ctx); err != nil {
		return nil, err
	}

	if embed != nil {
		entries, err := b.entries(ctx)
		if err != nil {
			return nil, err
		}

		cdb := chromem.NewDB()
		col, err := cdb.GetOrCreateCollection(collectionName, nil, embed)
		if err != nil {
			return nil, fmt.Errorf("creating knowledge collection: %w", err)
		}
		docs := make([]chromem.Document, len(entries))
		for i, e := range entries {
			docs[i] = chromem.Document{
				ID:       e.ID,
				Content:  e.Topic + ": " + e.Answer,
				Metadata: map[string]string{"topic": e.Topic},
			}
		}
		if len(docs) > 0 {
			if err := col.AddDocuments(ctx, docs, 1); err != nil {
				return nil, fmt.Errorf("indexing knowledge entries: %w", err)
			}
		}
		b.collection = col
	}

	return b, nil
}

// seed inserts the built-in entries when the table is empty.
func (b *Base) seed(ctx context.Context) error {
	var count int
	if err := b.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM knowledge_base`).Scan(&count); err != nil {
		return fmt.Errorf("counting knowledge entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, e := range seedEntries {
		_, err := b.db.ExecContext(ctx,
			`INSERT INTO knowledge_base (id, topic, keywords, answer) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), e.Topic, e.Keywords, e.Answer)
		if err != nil {
			return fmt.Errorf("seeding knowledge entry %q: %w", e.Topic, err)
		}
	}
	return nil
}

func (b *Base) entries(ctx context.Context) ([]Entry, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT id, topic, keywords, answer FROM knowledge_base`)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Topic, &e.Keywords, &e.Answer); err != nil {
			return nil, fmt.Errorf("scanning knowledge entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Answer returns the best answer for the question, or "" when nothing
// matches.
func (b *Base) Answer(ctx context.Context, question string) (string, error) {
	if b.collection != nil {
		answer, err := b.semanticAnswer(ctx, question)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
	return b.keywordAnswer(ctx, question)
}

func (b *Base) semanticAnswer(ctx context.Context, question string) (string, error) {
	if b.collection.Count() == 0 {
		return "", nil
	}
	results, err := b.collection.Query(ctx, question, 1, nil, nil)
	if err != nil {
		return "", fmt.Errorf("querying knowledge collection: %w", err)
	}
	if len(results) == 0 || results[0].Similarity < minSimilarity {
		return "", nil
	}

	var answer string
	err = b.db.QueryRowContext(ctx, `SELECT answer FROM knowledge_base WHERE id = ?`, results[0].ID).Scan(&answer)
	if err != nil {
		return "", fmt.Errorf("loading matched answer: %w", err)
	}
	return answer, nil
}

// keywordAnswer matches the first entry whose keyword list intersects the
// question text.
func (b *Base) keywordAnswer(ctx context.Context, question string) (string, error) {
	entries, err := b.entries(ctx)
	if err != nil {
		return "", err
	}

	lower := strings.ToLower(question)
	for _, e := range entries {
		for _, kw := range strings.Split(e.Keywords, ",") {
			kw = strings.TrimSpace(strings.ToLower(kw))
			if kw != "" && strings.Contains(lower, kw) {
				return e.Answer, nil
			}
		}
	}
	return "", nil
}
