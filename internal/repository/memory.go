package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/safeguard_backend/internal/models"
)

// MemoryDocuments - хранилище документов в памяти процесса.
// Документы не копируются: вызывающий не должен менять их после Create.
type MemoryDocuments[T models.Document] struct {
	mu    sync.RWMutex
	docs  map[string]T
	order []string
}

func NewMemoryDocuments[T models.Document]() *MemoryDocuments[T] {
	return &MemoryDocuments[T]{docs: make(map[string]T)}
}

func (r *MemoryDocuments[T]) Create(_ context.Context, doc T) error {
	id := doc.DocumentID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; ok {
		return fmt.Errorf("document %s: %w", id, models.ErrAlreadyExists)
	}
	r.docs[id] = doc
	r.order = append(r.order, id)
	return nil
}

func (r *MemoryDocuments[T]) GetByID(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("document %s: %w", id, models.ErrNotFound)
	}
	return doc, nil
}

// List возвращает документы в порядке добавления
func (r *MemoryDocuments[T]) List(_ context.Context, limit int) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.order)
	if limit > 0 && limit < n {
		n = limit
	}
	docs := make([]T, 0, n)
	for _, id := range r.order[:n] {
		docs = append(docs, r.docs[id])
	}
	return docs, nil
}
