package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmorita/ats-analytics/internal/types"
)

// PostgresStore is a VersionStore backed by a PostgreSQL connection pool.
// Resume documents live in a jsonb column; malformed or missing documents
// degrade to an empty document rather than an error.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// List returns all resume versions ordered by creation time.
func (s *PostgresStore) List(ctx context.Context) ([]Version, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, COALESCE(name, ''), created_at
		 FROM resume_versions ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	var versions []Version
	for rows.Next() {
		var v Version
		if err := rows.Scan(&v.ID, &v.Name, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read versions: %w", err)
	}
	return versions, nil
}

// Load retrieves a version's document. A missing row or malformed document
// yields an empty document, never an error.
func (s *PostgresStore) Load(ctx context.Context, id uuid.UUID) (types.ResumeDocument, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM resume_versions WHERE id = $1`,
		id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.ResumeDocument{}, nil
		}
		return nil, fmt.Errorf("failed to load version %s: %w", id, err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.ResumeDocument{}, nil
	}
	return doc, nil
}

// Save stores a document as a new version and returns its id.
func (s *PostgresStore) Save(ctx context.Context, name string, doc types.ResumeDocument) (uuid.UUID, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO resume_versions (name, document)
		 VALUES ($1, $2)
		 RETURNING id`,
		name, raw,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save version: %w", err)
	}
	return id, nil
}

// Delete removes a version.
func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM resume_versions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete version: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("version not found: %s", id)
	}
	return nil
}

// LoadCurrent returns the most recently stored job-description record, so a
// PostgresStore can double as the job-description source. A missing or
// malformed record is an error; the aggregator handles it by deriving
// keywords from the versions instead.
func (s *PostgresStore) LoadCurrent(ctx context.Context) (map[string]any, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM job_descriptions ORDER BY created_at DESC LIMIT 1`,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no job description stored")
		}
		return nil, fmt.Errorf("failed to load job description: %w", err)
	}

	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode job description: %w", err)
	}
	return record, nil
}

// Get returns the stored display profile, or nil if none exists.
func (s *PostgresStore) Get(ctx context.Context) (*Profile, error) {
	var p Profile
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(name, ''), COALESCE(avatar_url, ''), COALESCE(email, '')
		 FROM profiles ORDER BY created_at DESC LIMIT 1`,
	).Scan(&p.Name, &p.AvatarURL, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}
