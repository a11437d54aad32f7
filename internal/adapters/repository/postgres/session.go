package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"linkdrop/internal/core/domain"
	"linkdrop/internal/core/port"
)

type sqlSessionRepository struct {
	db *sql.DB
}

// NewSQLSessionRepository creates a new sqlSessionRepository
func NewSQLSessionRepository(db *sql.DB) port.SessionRepository {
	return &sqlSessionRepository{db: db}
}

// Create persists a session as a single row; the file list is stored as
// JSONB so the write stays atomic without a transaction.
func (s *sqlSessionRepository) Create(ctx context.Context, session domain.Session) error {
	files, err := json.Marshal(session.Files)
	if err != nil {
		return fmt.Errorf("failed to marshal session files: %w", err)
	}

	query := `
		INSERT INTO share_session (id, files, created_at, expires_at)
		VALUES ($1, $2, $3, $4)`

	_, err = s.db.ExecContext(ctx, query, session.ID, files, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return err
	}
	return nil
}

// FindByID returns the session if it exists and has not passed its TTL.
// Expired rows that the reaper has not swept yet are reported exactly
// like deleted ones.
func (s *sqlSessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, files, created_at, expires_at
		FROM share_session
		WHERE id = $1 AND expires_at > now()`

	var row dbSession
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&row.Files,
		&row.CreatedAt,
		&row.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	return row.ToDomain()
}

// Delete removes the session row. Deleting an absent session is a no-op.
func (s *sqlSessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM share_session WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return nil
}

// FindAllExpired returns sessions whose TTL elapsed before the given instant.
func (s *sqlSessionRepository) FindAllExpired(ctx context.Context, now time.Time) ([]domain.Session, error) {
	query := `
		SELECT id, files, created_at, expires_at
		FROM share_session
		WHERE expires_at <= $1`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var row dbSession
		if err := rows.Scan(&row.ID, &row.Files, &row.CreatedAt, &row.ExpiresAt); err != nil {
			return nil, err
		}
		session, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

type dbSession struct {
	ID        string    `db:"id"`
	Files     []byte    `db:"files"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// ToDomain converts db obj to domain
func (s *dbSession) ToDomain() (*domain.Session, error) {
	var files []domain.StoredObjectRef
	if err := json.Unmarshal(s.Files, &files); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session files: %w", err)
	}

	return &domain.Session{
		ID:        s.ID,
		Files:     files,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}, nil
}
