package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type SupermarketStore struct {
	db *sqlx.DB
}

func NewSupermarketStore(db *sqlx.DB) *SupermarketStore {
	return &SupermarketStore{db: db}
}

// Ensure creates the supermarket row if it does not exist yet and refreshes
// its display name and base URL when it does. Codes are stored uppercase.
func (s *SupermarketStore) Ensure(ctx context.Context, code, name, baseURL string) error {
	query := `
		INSERT INTO supermarkets (code, name, base_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			base_url = EXCLUDED.base_url`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, strings.ToUpper(code), name, baseURL)
	return err
}

func supermarketID(ctx context.Context, exec sqlx.ExtContext, code string) (int64, error) {
	var id int64
	err := exec.QueryRowxContext(ctx,
		"SELECT id FROM supermarkets WHERE code = $1",
		strings.ToUpper(code),
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("unknown supermarket %q", code)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
