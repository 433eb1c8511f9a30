package domain

import "time"

// SessionStatus is the state of one adapter run's session row.
type SessionStatus string

const (
	SessionRunning   SessionStatus = "running"
	SessionCompleted SessionStatus = "completed"
	SessionFailed    SessionStatus = "failed"
)

// ScrapingSession records one adapter run. A session is created running,
// mutated only through the tracker, and closed exactly once.
type ScrapingSession struct {
	ID              int64         `db:"id"`
	SupermarketCode string        `db:"supermarket_code"`
	StartedAt       time.Time     `db:"started_at"`
	CompletedAt     *time.Time    `db:"completed_at"`
	ProductsScraped int           `db:"products_scraped"`
	Status          SessionStatus `db:"status"`
	ErrorMessage    *string       `db:"error_message"`
}
