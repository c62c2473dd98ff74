package repository

import (
	"sync"

	"github.com/gogotex/docstore/internal/document"
)

// MemoryRepo keeps documents in a map keyed by id. All operations are total;
// the lock only makes it safe to share one instance between HTTP handlers.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*document.Document
	settings
}

func NewMemoryRepo(opts ...Option) *MemoryRepo {
	return &MemoryRepo{
		store:    make(map[string]*document.Document),
		settings: newSettings(opts),
	}
}

// Save upserts doc and returns it. A missing id is generated. The creation time
// of an existing record always wins over whatever the caller supplied; a new
// record without one is stamped with the current time. doc must not be nil.
func (m *MemoryRepo) Save(doc *document.Document) *document.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc.ID == "" {
		doc.ID = m.ids.NewID()
	}
	if existing, ok := m.store[doc.ID]; ok {
		doc.Created = existing.Created
	} else if doc.Created.IsZero() {
		doc.Created = m.now()
	}
	m.store[doc.ID] = doc
	return doc
}

func (m *MemoryRepo) FindByID(id string) (*document.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[id]
	return d, ok
}

// Search scans every stored document. The result is never nil and its order
// is unspecified.
func (m *MemoryRepo) Search(req *document.SearchRequest) []*document.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*document.Document, 0, len(m.store))
	for _, d := range m.store {
		if document.Matches(d, req) {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of stored documents.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
