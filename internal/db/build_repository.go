package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/buffcalc/internal/model"
	"github.com/udisondev/buffcalc/internal/state"
)

const (
	// MaxBuildNameLen matches builds.name VARCHAR(64).
	MaxBuildNameLen = 64

	// DefaultListLimit is used by ListBuilds when limit <= 0.
	DefaultListLimit = 50
)

var ErrInvalidBuildName = errors.New("invalid build name")

// Build is a saved calculator state.
type Build struct {
	ID          int64
	Name        string
	Fingerprint string
	State       model.State
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PostgresBuildRepository stores builds in PostgreSQL.
type PostgresBuildRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBuildRepository создаёт новый PostgreSQL repository.
func NewPostgresBuildRepository(pool *pgxpool.Pool) *PostgresBuildRepository {
	return &PostgresBuildRepository{pool: pool}
}

// SaveBuild сохраняет сборку. Fingerprint вычисляется из состояния,
// повторное сохранение того же состояния только обновляет имя и updated_at.
func (r *PostgresBuildRepository) SaveBuild(ctx context.Context, name string, st model.State) (*Build, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxBuildNameLen {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBuildName, name)
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("validating build %q: %w", name, err)
	}

	fp, err := state.Fingerprint(st)
	if err != nil {
		return nil, fmt.Errorf("fingerprinting build %q: %w", name, err)
	}
	raw, err := state.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshaling build %q: %w", name, err)
	}

	b := &Build{Name: name, Fingerprint: fp, State: st.Clone()}
	err = r.pool.QueryRow(ctx,
		`INSERT INTO builds (name, fingerprint, state)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (fingerprint) DO UPDATE
		 SET name = EXCLUDED.name, updated_at = now()
		 RETURNING id, created_at, updated_at`,
		name, fp, raw,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("saving build %q: %w", name, err)
	}
	return b, nil
}

// GetBuild возвращает сборку по fingerprint.
// Возвращает nil, nil если сборка не найдена.
func (r *PostgresBuildRepository) GetBuild(ctx context.Context, fingerprint string) (*Build, error) {
	var b Build
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, fingerprint, state, created_at, updated_at
		 FROM builds WHERE fingerprint = $1`, fingerprint,
	).Scan(&b.ID, &b.Name, &b.Fingerprint, &raw, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying build %q: %w", fingerprint, err)
	}
	if err := json.Unmarshal(raw, &b.State); err != nil {
		return nil, fmt.Errorf("decoding build %q: %w", fingerprint, err)
	}
	return &b, nil
}

// ListBuilds returns builds, most recently updated first.
func (r *PostgresBuildRepository) ListBuilds(ctx context.Context, limit int) ([]*Build, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, fingerprint, state, created_at, updated_at
		 FROM builds ORDER BY updated_at DESC, id DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	defer rows.Close()

	var builds []*Build
	for rows.Next() {
		var b Build
		var raw []byte
		if err := rows.Scan(&b.ID, &b.Name, &b.Fingerprint, &raw, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning build: %w", err)
		}
		if err := json.Unmarshal(raw, &b.State); err != nil {
			return nil, fmt.Errorf("decoding build %q: %w", b.Fingerprint, err)
		}
		builds = append(builds, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating builds: %w", err)
	}
	return builds, nil
}

// DeleteBuild удаляет сборку. Возвращает false если её не было.
func (r *PostgresBuildRepository) DeleteBuild(ctx context.Context, fingerprint string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM builds WHERE fingerprint = $1`, fingerprint)
	if err != nil {
		return false, fmt.Errorf("deleting build %q: %w", fingerprint, err)
	}
	return tag.RowsAffected() > 0, nil
}
