package storage

import "github.com/mjordahl/habitgrid/internal/models"

// MemoryStore keeps the document in process memory only. Used for the
// ephemeral backend and as the fixture store in tests.
type MemoryStore struct {
	doc *models.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Load() (*models.Document, error) {
	if s.doc == nil {
		return nil, nil
	}
	return s.doc.Clone(), nil
}

func (s *MemoryStore) Save(doc models.Document) error {
	s.doc = doc.Clone()
	return nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
