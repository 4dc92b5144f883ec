package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LoginLinkExpiry is how long a passwordless login link stays valid.
const LoginLinkExpiry = 15 * time.Minute

// CreateLoginLink stores a one-time login token for a user.
func CreateLoginLink(ctx context.Context, db *sql.DB, token string, userID int64, expiresAt time.Time) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO login_links (token, user_id, expires_at) VALUES (?, ?, ?)`,
		token, userID, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("creating login link: %w", err)
	}

	// Opportunistically clean up expired links.
	_, _ = db.ExecContext(ctx,
		`DELETE FROM login_links WHERE expires_at < ?`, time.Now(),
	)

	return nil
}

// RedeemLoginLink marks an unexpired, unused link as used and returns the
// user it belongs to. Returns 0 when the token is unknown, expired, or
// already used; a token can never be redeemed twice.
func RedeemLoginLink(ctx context.Context, db *sql.DB, token string) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE login_links SET used_at = CURRENT_TIMESTAMP
		 WHERE token = ? AND used_at IS NULL AND expires_at > ?`,
		token, time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("redeeming login link: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("redeeming login link: %w", err)
	}
	if n == 0 {
		return 0, nil
	}

	var userID int64
	err = db.QueryRowContext(ctx,
		`SELECT user_id FROM login_links WHERE token = ?`, token,
	).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("reading redeemed login link: %w", err)
	}
	return userID, nil
}
