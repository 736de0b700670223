package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/akraev/reposhare/internal/storage"
)

// InitDB opens the Postgres connection and bootstraps the two tables:
// shared link records and the per-owner index.
func InitDB(ps string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", ps)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	createTables := `
		CREATE TABLE IF NOT EXISTS shared_links (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			owner_name TEXT NOT NULL,
			repositories JSONB NOT NULL,
			include_private BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			access_count BIGINT NOT NULL DEFAULT 0,
			last_accessed_at TIMESTAMPTZ,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		);
		CREATE TABLE IF NOT EXISTS user_link_index (
			owner_id TEXT NOT NULL,
			link_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (owner_id, link_id)
		);`

	if _, err := db.Exec(createTables); err != nil {
		logger.Fatal("cannot create tables", zap.Error(err))
	}

	return db
}

// LinkRepository is the Postgres implementation of storage.LinkStore.
type LinkRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateLinkRepository(db *sql.DB, logger *zap.Logger) *LinkRepository {
	return &LinkRepository{
		db:     db,
		logger: logger,
	}
}

const linkColumns = "id, owner_id, owner_name, repositories, include_private, created_at, expires_at, access_count, last_accessed_at, is_active"

func scanLink(row interface{ Scan(...any) error }) (*storage.LinkRecord, error) {
	var r storage.LinkRecord
	var repos []byte
	var lastAccessed sql.NullTime

	err := row.Scan(&r.ID, &r.OwnerID, &r.OwnerName, &repos, &r.IncludePrivate,
		&r.CreatedAt, &r.ExpiresAt, &r.AccessCount, &lastAccessed, &r.IsActive)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(repos, &r.Repositories); err != nil {
		return nil, fmt.Errorf("%w: repositories for %s: %v", storage.ErrCorrupted, r.ID, err)
	}
	if lastAccessed.Valid {
		t := lastAccessed.Time
		r.LastAccessedAt = &t
	}
	return &r, nil
}

func (r *LinkRepository) Get(ctx context.Context, id string) (*storage.LinkRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM shared_links WHERE id = $1;", id)

	record, err := scanLink(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *LinkRepository) Put(ctx context.Context, record storage.LinkRecord) error {
	repos, err := json.Marshal(record.Repositories)
	if err != nil {
		return err
	}

	var lastAccessed sql.NullTime
	if record.LastAccessedAt != nil {
		lastAccessed = sql.NullTime{Time: *record.LastAccessedAt, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO shared_links (`+linkColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			expires_at = EXCLUDED.expires_at,
			access_count = EXCLUDED.access_count,
			last_accessed_at = EXCLUDED.last_accessed_at,
			is_active = EXCLUDED.is_active;`,
		record.ID, record.OwnerID, record.OwnerName, repos, record.IncludePrivate,
		record.CreatedAt, record.ExpiresAt, record.AccessCount, lastAccessed, record.IsActive,
	)
	return err
}

func (r *LinkRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM shared_links WHERE id = $1;", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *LinkRepository) List(ctx context.Context) ([]storage.LinkRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+linkColumns+" FROM shared_links;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.LinkRecord, 0)
	for rows.Next() {
		record, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *LinkRepository) ReplaceAll(ctx context.Context, records []storage.LinkRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM shared_links;"); err != nil {
		tx.Rollback()
		return err
	}

	for _, record := range records {
		repos, err := json.Marshal(record.Repositories)
		if err != nil {
			tx.Rollback()
			return err
		}

		var lastAccessed sql.NullTime
		if record.LastAccessedAt != nil {
			lastAccessed = sql.NullTime{Time: *record.LastAccessedAt, Valid: true}
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO shared_links ("+linkColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);",
			record.ID, record.OwnerID, record.OwnerName, repos, record.IncludePrivate,
			record.CreatedAt, record.ExpiresAt, record.AccessCount, lastAccessed, record.IsActive,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r *LinkRepository) UserIndex(ctx context.Context, ownerID string) ([]storage.IndexEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT link_id, created_at FROM user_link_index WHERE owner_id = $1 ORDER BY created_at ASC;", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]storage.IndexEntry, 0)
	for rows.Next() {
		var e storage.IndexEntry
		if err := rows.Scan(&e.LinkID, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *LinkRepository) AppendUserIndex(ctx context.Context, ownerID string, entry storage.IndexEntry) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO user_link_index (owner_id, link_id, created_at) VALUES ($1, $2, $3);",
		ownerID, entry.LinkID, entry.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		// Already indexed; appending is idempotent.
		return nil
	}
	return err
}

func (r *LinkRepository) RemoveUserIndex(ctx context.Context, ownerID string, linkID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM user_link_index WHERE owner_id = $1 AND link_id = $2;", ownerID, linkID)
	return err
}

func (r *LinkRepository) PruneUserIndex(ctx context.Context, keep map[string]struct{}) error {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT link_id FROM user_link_index;")
	if err != nil {
		return err
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var linkID string
		if err := rows.Scan(&linkID); err != nil {
			return err
		}
		if _, ok := keep[linkID]; !ok {
			stale = append(stale, linkID)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, linkID := range stale {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM user_link_index WHERE link_id = $1;", linkID); err != nil {
			return err
		}
	}
	return nil
}

func (r *LinkRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// compile-time conformance check
var _ storage.LinkStore = (*LinkRepository)(nil)
