package profile

// Store exposes owner profile retrieval for handlers and services.
type Store interface {
	Owner() Profile
}

// MemoryStore implements Store with a fixed in-memory profile.
type MemoryStore struct {
	owner Profile
}

// NewMemoryStore returns a MemoryStore holding the supplied profile.
func NewMemoryStore(owner Profile) *MemoryStore {
	return &MemoryStore{owner: owner}
}

// Owner returns the configured owner profile.
func (s *MemoryStore) Owner() Profile {
	return s.owner
}
