package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/scoutbot/internal/core"
	"github.com/sandevgo/scoutbot/pkg/log"
)

// ConnectionsRepo persists per-user platform credentials. Only credentials
// are stored; message history is in-memory by design.
type ConnectionsRepo struct {
	db *sql.DB
}

func NewConnectionsRepo(db *sql.DB) *ConnectionsRepo {
	return &ConnectionsRepo{db: db}
}

func (r *ConnectionsRepo) Save(ctx context.Context, creds core.Credentials) error {
	query := `INSERT INTO connections (user_id, platform, token) VALUES (?, ?, ?)
		ON CONFLICT (user_id, platform) DO UPDATE SET token = excluded.token`
	_, err := r.db.ExecContext(ctx, query, creds.UserID, string(creds.Platform), creds.Token)
	if err != nil {
		return fmt.Errorf("failed to save connection: %w", err)
	}
	return nil
}

func (r *ConnectionsRepo) Delete(ctx context.Context, userID string, platform core.Platform) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM connections WHERE user_id = ? AND platform = ?`, userID, string(platform))
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	return nil
}

func (r *ConnectionsRepo) DeleteAll(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM connections WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete connections: %w", err)
	}
	return nil
}

func (r *ConnectionsRepo) List(ctx context.Context, userID string) ([]core.Credentials, error) {
	return r.query(ctx, `SELECT user_id, platform, token FROM connections WHERE user_id = ? ORDER BY platform`, userID)
}

func (r *ConnectionsRepo) All(ctx context.Context) ([]core.Credentials, error) {
	return r.query(ctx, `SELECT user_id, platform, token FROM connections ORDER BY user_id, platform`)
}

func (r *ConnectionsRepo) query(ctx context.Context, query string, args ...any) ([]core.Credentials, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer rows.Close()

	var out []core.Credentials
	for rows.Next() {
		var creds core.Credentials
		var platform string
		if err := rows.Scan(&creds.UserID, &platform, &creds.Token); err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		p, ok := core.ParsePlatform(platform)
		if !ok {
			// Rows written by a newer build; skip rather than fail
			continue
		}
		creds.Platform = p
		out = append(out, creds)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(out)).Msg("loaded stored connections")
	return out, nil
}
