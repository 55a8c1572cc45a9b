package services

import (
	"sync"
)

// MockArchiveService is a mock implementation of ArchiveService for testing
type MockArchiveService struct {
	storedReports map[string][]byte // map of object key to report content
	mu            sync.RWMutex
}

// NewMockArchiveService creates a new mock archive service
func NewMockArchiveService() *MockArchiveService {
	return &MockArchiveService{
		storedReports: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global archive service instance for testing
func (m *MockArchiveService) SetAsMockForTesting() {
	SetArchiveService(m)
}

// StoreReport simulates uploading a report to S3
func (m *MockArchiveService) StoreReport(filename string, content []byte) (string, error) {
	key := "reports/" + filename

	stored := make([]byte, len(content))
	copy(stored, content)

	m.mu.Lock()
	m.storedReports[key] = stored
	m.mu.Unlock()

	return key, nil
}

// StoredReport returns the archived content for an object key, if present
func (m *MockArchiveService) StoredReport(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.storedReports[key]
	return content, ok
}

// StoredCount returns how many reports have been archived
func (m *MockArchiveService) StoredCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.storedReports)
}
