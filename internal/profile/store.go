package profile

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lumeaddon/lume/internal/models"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS profile_revision (
    id VARCHAR(36) PRIMARY KEY,
    created_at TIMESTAMP,
    body TEXT
  );
`

// Store keeps every submitted profile as a revision so the form can be
// re-opened with the last applied values.
type Store struct {
	logger *log.Logger
	db     *sql.DB
}

func NewStore(logger *log.Logger, db *sql.DB) (*Store, error) {
	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising profile schema: %w", err)
	}
	return &Store{logger: logger, db: db}, nil
}

// Save persists the profile as a new revision and returns its id.
func (s *Store) Save(p models.Profile) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("Error encoding profile: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		"INSERT INTO profile_revision (id, created_at, body) VALUES ($1, $2, $3);",
		id, time.Now(), string(body),
	)
	if err != nil {
		return "", fmt.Errorf("Error saving profile revision: %w", err)
	}

	s.logger.Debug("saved profile revision", "id", id)
	return id, nil
}

// Latest returns the most recently saved profile, or nil when nothing
// has been saved yet.
func (s *Store) Latest() (*models.Profile, error) {
	row := s.db.QueryRow("SELECT body FROM profile_revision ORDER BY created_at DESC LIMIT 1")

	var body string
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Error reading latest profile revision: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, fmt.Errorf("Error decoding profile revision: %w", err)
	}
	return &p, nil
}

// Revisions returns the ids and timestamps of all saved revisions,
// newest first.
func (s *Store) Revisions() ([]Revision, error) {
	rows, err := s.db.Query("SELECT id, created_at FROM profile_revision ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("Error reading profile revisions: %w", err)
	}
	defer rows.Close()

	revisions := []Revision{}
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("Error scanning profile revision: %w", err)
		}
		revisions = append(revisions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Error iterating profile revisions: %w", err)
	}
	return revisions, nil
}

type Revision struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
