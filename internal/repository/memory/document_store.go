package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/poi-catalog/internal/domain/repository"
)

type documentStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

// NewDocumentStore возвращает потокобезопасное хранилище в памяти. Основное
// применение - модульные тесты слоёв выше документного контракта.
func NewDocumentStore() repository.DocumentStore {
	return &documentStore{
		collections: make(map[string]map[string][]byte),
	}
}

func (s *documentStore) Set(_ context.Context, collection, id string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		c = make(map[string][]byte)
		s.collections[collection] = c
	}
	c[id] = append([]byte(nil), doc...)
	return nil
}

func (s *documentStore) Get(_ context.Context, collection, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), doc...), nil
}

func (s *documentStore) Query(_ context.Context, collection, field, value string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs [][]byte
	for _, doc := range s.collections[collection] {
		var fields map[string]interface{}
		if err := json.Unmarshal(doc, &fields); err != nil {
			return nil, fmt.Errorf("document query error: %w", err)
		}
		if v, ok := fields[field]; ok && fmt.Sprintf("%v", v) == value {
			docs = append(docs, append([]byte(nil), doc...))
		}
	}
	return docs, nil
}

func (s *documentStore) Scan(_ context.Context, collection string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs [][]byte
	for _, doc := range s.collections[collection] {
		docs = append(docs, append([]byte(nil), doc...))
	}
	return docs, nil
}

func (s *documentStore) Delete(_ context.Context, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		return false, nil
	}
	if _, ok := c[id]; !ok {
		return false, nil
	}
	delete(c, id)
	return true, nil
}
