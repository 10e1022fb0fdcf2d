// Package preset implements the filter-preset repository using PostgreSQL.
// Filter snapshots are stored as a JSONB column; queries are built with
// squirrel and scanned with pgx.
package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/folioview/backend/internal/adapter/postgres"
	"github.com/folioview/backend/internal/domain"
)

const table = "filter_presets"

var columns = []string{"id", "owner_id", "name", "description", "filters", "created_at", "updated_at"}

// psql is the statement builder configured for PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides filter-preset persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new preset repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByOwner returns all presets owned by ownerID ordered by creation time.
// Returns an empty slice (not nil) when the owner has no presets.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FilterPreset, error) {
	query := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	result, err := scanPresets(rows)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	return result, nil
}

// GetByID returns one preset by primary key with owner filter.
// Returns domain.ErrNotFound when the preset does not exist or belongs to
// another owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.FilterPreset, error) {
	query := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.FilterPreset{}, fmt.Errorf("build get query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	row := querier.QueryRow(ctx, sql, args...)

	p, err := scanPreset(row)
	if err != nil {
		return domain.FilterPreset{}, postgres.MapError(err, "preset", id)
	}

	return p, nil
}

// Create inserts a new preset. The caller supplies the id and timestamps.
func (r *Repo) Create(ctx context.Context, preset domain.FilterPreset) error {
	filters, err := json.Marshal(preset.Filters)
	if err != nil {
		return fmt.Errorf("marshal filters: %w", err)
	}

	query := psql.Insert(table).
		Columns(columns...).
		Values(
			preset.ID,
			preset.OwnerID,
			preset.Name,
			ptrStringToPgText(preset.Description),
			filters,
			preset.CreatedAt,
			preset.UpdatedAt,
		)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "preset", preset.ID)
	}

	return nil
}

// Delete removes a preset. Returns domain.ErrNotFound when the preset does
// not exist or belongs to another owner.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := psql.Delete(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "preset", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("preset %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanPresets(rows pgx.Rows) ([]domain.FilterPreset, error) {
	var result []domain.FilterPreset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.FilterPreset{}
	}

	return result, nil
}

func scanPreset(row pgx.Row) (domain.FilterPreset, error) {
	var (
		id          uuid.UUID
		ownerID     uuid.UUID
		name        string
		description pgtype.Text
		filters     []byte
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&id, &ownerID, &name, &description, &filters, &createdAt, &updatedAt); err != nil {
		return domain.FilterPreset{}, err
	}

	var state domain.FilterState
	if err := json.Unmarshal(filters, &state); err != nil {
		return domain.FilterPreset{}, fmt.Errorf("unmarshal filters: %w", err)
	}

	p := domain.FilterPreset{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Filters:   state,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if description.Valid {
		p.Description = &description.String
	}

	return p, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
