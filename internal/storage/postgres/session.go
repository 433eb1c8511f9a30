package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"pricewatch/internal/domain"
)

type SessionStore struct {
	db *sqlx.DB
}

func NewSessionStore(db *sqlx.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Begin opens a running session for the supermarket and returns its id.
func (s *SessionStore) Begin(ctx context.Context, supermarketCode string) (int64, error) {
	query := `
		INSERT INTO scraping_sessions (supermarket_id, started_at, status)
		SELECT id, NOW(), 'running' FROM supermarkets WHERE code = $1
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, strings.ToUpper(supermarketCode)).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("unknown supermarket %q", supermarketCode)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Complete closes a running session successfully. Closing a session that is
// not running is an invariant violation.
func (s *SessionStore) Complete(ctx context.Context, sessionID int64, productsScraped int) error {
	query := `
		UPDATE scraping_sessions
		SET completed_at = NOW(), products_scraped = $2, status = 'completed'
		WHERE id = $1 AND status = 'running'`

	return s.close(ctx, query, sessionID, productsScraped)
}

// Fail closes a running session with an error message.
func (s *SessionStore) Fail(ctx context.Context, sessionID int64, errorMessage string) error {
	query := `
		UPDATE scraping_sessions
		SET completed_at = NOW(), status = 'failed', error_message = $2
		WHERE id = $1 AND status = 'running'`

	return s.close(ctx, query, sessionID, errorMessage)
}

func (s *SessionStore) close(ctx context.Context, query string, sessionID int64, arg any) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, sessionID, arg)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("session %d: %w", sessionID, domain.ErrInvalidSessionTransition)
	}
	return nil
}

// Get loads one session with its supermarket code.
func (s *SessionStore) Get(ctx context.Context, sessionID int64) (*domain.ScrapingSession, error) {
	query := `
		SELECT ss.id, sm.code AS supermarket_code, ss.started_at, ss.completed_at,
		       ss.products_scraped, ss.status, ss.error_message
		FROM scraping_sessions ss
		JOIN supermarkets sm ON sm.id = ss.supermarket_id
		WHERE ss.id = $1`

	var session domain.ScrapingSession
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &session, query, sessionID); err != nil {
		return nil, err
	}
	return &session, nil
}
