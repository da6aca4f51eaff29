package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
)

// Ensure Store implements the record ports.
var (
	_ driven.RecordStore = (*Store)(nil)
	_ driven.RecentStore = (*Store)(nil)
)

const recordColumns = "id, object_type, title, subtitle, icon, viewed_ns, created_at"

// Save stores or updates a record.
func (s *Store) Save(ctx context.Context, record domain.Record) error {
	if record.ID == "" {
		return fmt.Errorf("%w: record id is required", domain.ErrInvalidInput)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, object_type, title, subtitle, icon, viewed_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			object_type = excluded.object_type,
			title = excluded.title,
			subtitle = excluded.subtitle,
			icon = excluded.icon,
			viewed_ns = COALESCE(excluded.viewed_ns, records.viewed_ns)
	`, record.ID, record.ObjectType, record.Title, record.Subtitle, record.Icon,
		nullUnixNano(record.ViewedAt), record.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM records WHERE id = ?", id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	return nil
}

// List returns all records ordered by title.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	return s.query(ctx, "SELECT "+recordColumns+" FROM records ORDER BY title, id")
}

// Search returns records whose title or subtitle contains term, case-insensitively.
func (s *Store) Search(
	ctx context.Context, term string, excludeIDs []string, opts domain.SearchOptions,
) ([]domain.Record, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	var b strings.Builder
	b.WriteString("SELECT " + recordColumns + " FROM records")
	b.WriteString(` WHERE (LOWER(title) LIKE ? ESCAPE '\' OR LOWER(subtitle) LIKE ? ESCAPE '\')`)
	args := []any{pattern, pattern}

	if len(excludeIDs) > 0 {
		b.WriteString(" AND id NOT IN (" + placeholders(len(excludeIDs)) + ")")
		for _, id := range excludeIDs {
			args = append(args, id)
		}
	}
	if len(opts.ObjectTypes) > 0 {
		b.WriteString(" AND object_type IN (" + placeholders(len(opts.ObjectTypes)) + ")")
		for _, t := range opts.ObjectTypes {
			args = append(args, t)
		}
	}
	b.WriteString(" ORDER BY title, id")
	if opts.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
	}

	return s.query(ctx, b.String(), args...)
}

// MarkViewed stamps the given records as viewed now. Unknown ids are ignored.
func (s *Store) MarkViewed(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	args := []any{s.now().UnixNano()}
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE records SET viewed_ns = ? WHERE id IN ("+placeholders(len(ids))+")", args...)
	if err != nil {
		return fmt.Errorf("marking records viewed: %w", err)
	}
	return nil
}

// Recent returns up to limit viewed records, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.Record, error) {
	if limit <= 0 {
		limit = domain.DefaultRecentLimit
	}
	return s.query(ctx, "SELECT "+recordColumns+
		" FROM records WHERE viewed_ns IS NOT NULL ORDER BY viewed_ns DESC, id LIMIT ?", limit)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.Record, error) {
	var r domain.Record
	var viewed sql.NullInt64
	var created sql.NullTime
	if err := row.Scan(&r.ID, &r.ObjectType, &r.Title, &r.Subtitle, &r.Icon, &viewed, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}
	if viewed.Valid {
		r.ViewedAt = time.Unix(0, viewed.Int64).UTC()
	}
	if created.Valid {
		r.CreatedAt = created.Time
	}
	return &r, nil
}

func nullUnixNano(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// escapeLike escapes LIKE wildcards so the term matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(s)
}
