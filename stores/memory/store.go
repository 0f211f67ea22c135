package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"layerboard/core"
)

type memStore struct {
	mu        sync.RWMutex
	documents map[string]*core.Document
}

// NewStore creates a new in-memory document store.
func NewStore() *memStore {
	return &memStore{
		documents: make(map[string]*core.Document),
	}
}

func (s *memStore) FindID(ctx context.Context, id string) (*core.Document, error) {
	log := logrus.WithField("document_id", id)

	s.mu.RLock()
	doc, ok := s.documents[id]
	s.mu.RUnlock()

	if !ok {
		log.WithField("error", "document not found").Warn("Document with specified ID not found")
		return nil, fmt.Errorf("document with id %s not found", id)
	}

	log.Info("Document retrieved successfully")
	return doc.Clone(), nil
}

func (s *memStore) Create(ctx context.Context, document *core.Document) (string, error) {
	id := ulid.Make().String()

	s.mu.Lock()
	s.documents[id] = document.Clone()
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"document_id": id,
		"page_count":  len(document.Pages),
	}).Info("Document created successfully")

	return id, nil
}
