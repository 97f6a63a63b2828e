// Package store provides access to the resume version store and related
// display-only sources. The engine consumes these as injected collaborators;
// persistence belongs entirely to the store.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tmorita/ats-analytics/internal/types"
)

// Version is the metadata for one stored resume version.
type Version struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile holds display-only account information. It never affects scoring.
type Profile struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Email     string `json:"email,omitempty"`
}

// VersionStore enumerates stored resume versions and loads their documents.
// Implementations must tolerate missing or partial records: a missing
// document loads as an empty document, not an error.
type VersionStore interface {
	List(ctx context.Context) ([]Version, error)
	Load(ctx context.Context, id uuid.UUID) (types.ResumeDocument, error)
}

// ProfileSource provides the optional display profile.
type ProfileSource interface {
	Get(ctx context.Context) (*Profile, error)
}

// MemoryStore is an in-memory VersionStore used for tests and for
// file-driven CLI runs. Versions keep their insertion order.
type MemoryStore struct {
	mu       sync.RWMutex
	versions []Version
	docs     map[uuid.UUID]types.ResumeDocument
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[uuid.UUID]types.ResumeDocument)}
}

// Add stores a document under a fresh version id and returns its metadata.
func (m *MemoryStore) Add(name string, doc types.ResumeDocument) Version {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := Version{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	m.versions = append(m.versions, v)
	m.docs[v.ID] = doc
	return v
}

// List returns all versions in insertion order.
func (m *MemoryStore) List(_ context.Context) ([]Version, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Version, len(m.versions))
	copy(out, m.versions)
	return out, nil
}

// Load returns the document for a version, or an empty document if unknown.
func (m *MemoryStore) Load(_ context.Context, id uuid.UUID) (types.ResumeDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if doc, ok := m.docs[id]; ok {
		return doc, nil
	}
	return types.ResumeDocument{}, nil
}

// StaticProfile is a fixed ProfileSource, mainly for tests and CLI runs.
type StaticProfile Profile

// Get returns the fixed profile.
func (p StaticProfile) Get(_ context.Context) (*Profile, error) {
	out := Profile(p)
	return &out, nil
}
