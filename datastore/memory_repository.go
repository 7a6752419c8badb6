package datastore

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/color-game/colorimetry/models"
)

// MemoryConversionStore keeps conversion records in process. It backs the
// service when no database is configured.
type MemoryConversionStore struct {
	mu          sync.RWMutex
	conversions map[string]models.Conversion
}

func NewMemoryConversionStore() *MemoryConversionStore {
	return &MemoryConversionStore{conversions: make(map[string]models.Conversion)}
}

func (m *MemoryConversionStore) Create(conversion models.Conversion) (models.Conversion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversions[conversion.ID] = conversion
	return conversion, nil
}

func (m *MemoryConversionStore) GetByID(id string) (models.Conversion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	conversion, ok := m.conversions[id]
	if !ok {
		return models.Conversion{}, NoRowsError{true, sql.ErrNoRows}
	}
	return conversion, nil
}

func (m *MemoryConversionStore) GetRecent(limit int) ([]models.Conversion, error) {
	m.mu.RLock()
	conversions := make([]models.Conversion, 0, len(m.conversions))
	for _, conversion := range m.conversions {
		conversions = append(conversions, conversion)
	}
	m.mu.RUnlock()

	sort.Slice(conversions, func(i, j int) bool {
		return conversions[i].CreatedAt.After(conversions[j].CreatedAt)
	})
	if limit >= 0 && len(conversions) > limit {
		conversions = conversions[:limit]
	}
	return conversions, nil
}

func (m *MemoryConversionStore) DeleteOlderThan(cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for id, conversion := range m.conversions {
		if conversion.CreatedAt.Before(cutoff) {
			delete(m.conversions, id)
			deleted++
		}
	}
	return deleted, nil
}
