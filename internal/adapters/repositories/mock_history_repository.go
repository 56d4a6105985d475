package repositories

import (
	"context"
	"conversion-service/internal/domain"
	"sync"
)

// In-memory ConversionRecorder used by handler tests.
type MockHistoryRepository struct {
	mu      sync.Mutex
	Records []domain.ConversionRecord
}

func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{}
}

func (m *MockHistoryRepository) Record(ctx context.Context, rec domain.ConversionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockHistoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.ConversionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 || len(m.Records) == 0 {
		return []domain.ConversionRecord{}, nil
	}

	// Newest first, matching the sql adapter's ordering.
	out := make([]domain.ConversionRecord, 0, limit)
	for i := len(m.Records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.Records[i])
	}
	return out, nil
}
