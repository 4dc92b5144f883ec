package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zigap/skrinja/internal/model"
)

// CreateShare grants grantee access to owner's forest. Granting twice is a
// no-op.
func CreateShare(ctx context.Context, db *sql.DB, ownerID, granteeID int64) error {
	if ownerID == granteeID {
		return fmt.Errorf("cannot share an account with itself")
	}
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO shares (owner_id, grantee_id) VALUES (?, ?)`,
		ownerID, granteeID,
	)
	if err != nil {
		return fmt.Errorf("creating share: %w", err)
	}
	return nil
}

// DeleteShare revokes grantee's access to owner's forest. Returns whether a
// share existed.
func DeleteShare(ctx context.Context, db *sql.DB, ownerID, granteeID int64) (bool, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM shares WHERE owner_id = ? AND grantee_id = ?`,
		ownerID, granteeID,
	)
	if err != nil {
		return false, fmt.Errorf("deleting share: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting share: %w", err)
	}
	return n > 0, nil
}

// HasShare reports whether grantee may access owner's forest.
func HasShare(ctx context.Context, db *sql.DB, ownerID, granteeID int64) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shares WHERE owner_id = ? AND grantee_id = ?`,
		ownerID, granteeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking share: %w", err)
	}
	return count > 0, nil
}

// ListSharesByOwner returns every share the owner has granted.
func ListSharesByOwner(ctx context.Context, db *sql.DB, ownerID int64) ([]model.Share, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT s.owner_id, s.grantee_id, s.created_at, o.username, g.username
		 FROM shares s
		 JOIN users o ON o.id = s.owner_id
		 JOIN users g ON g.id = s.grantee_id
		 WHERE s.owner_id = ?
		 ORDER BY s.created_at`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing shares: %w", err)
	}
	defer rows.Close()

	return scanShares(rows)
}

// ListSharesForGrantee returns every share granted to the given user.
func ListSharesForGrantee(ctx context.Context, db *sql.DB, granteeID int64) ([]model.Share, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT s.owner_id, s.grantee_id, s.created_at, o.username, g.username
		 FROM shares s
		 JOIN users o ON o.id = s.owner_id
		 JOIN users g ON g.id = s.grantee_id
		 WHERE s.grantee_id = ?
		 ORDER BY s.created_at`, granteeID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing received shares: %w", err)
	}
	defer rows.Close()

	return scanShares(rows)
}

func scanShares(rows *sql.Rows) ([]model.Share, error) {
	var shares []model.Share
	for rows.Next() {
		var s model.Share
		if err := rows.Scan(&s.OwnerID, &s.GranteeID, &s.CreatedAt, &s.OwnerUsername, &s.GranteeUsername); err != nil {
			return nil, fmt.Errorf("scanning share: %w", err)
		}
		shares = append(shares, s)
	}
	return shares, rows.Err()
}
