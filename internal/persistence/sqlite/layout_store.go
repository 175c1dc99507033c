package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/dock"
	"github.com/bnema/dockyard/internal/logging"
)

// LayoutStore persists named window layouts as JSON snapshots.
type LayoutStore struct {
	db *sql.DB
}

// LayoutInfo is a summary row for a saved layout.
type LayoutInfo struct {
	Name      string
	UpdatedAt time.Time
}

// NewLayoutStore creates a layout store over an open connection.
func NewLayoutStore(db *sql.DB) *LayoutStore {
	return &LayoutStore{db: db}
}

// Save inserts or replaces the layout stored under name.
func (s *LayoutStore) Save(ctx context.Context, name string, state *dock.WindowState) error {
	log := logging.FromContext(ctx)
	if name == "" {
		return errors.New("layout name cannot be empty")
	}
	if state == nil {
		return errors.New("layout state cannot be nil")
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout state")
		return err
	}

	log.Debug().
		Str("layout", name).
		Int("bytes", len(stateJSON)).
		Msg("saving layout snapshot")

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO layouts (name, state_json, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET
			state_json = excluded.state_json,
			updated_at = excluded.updated_at`,
		name, string(stateJSON))
	if err != nil {
		return fmt.Errorf("save layout %q: %w", name, err)
	}
	return nil
}

// Get returns the layout stored under name, or nil if none exists.
func (s *LayoutStore) Get(ctx context.Context, name string) (*dock.WindowState, error) {
	var stateJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT state_json FROM layouts WHERE name = ?`, name).Scan(&stateJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get layout %q: %w", name, err)
	}

	var state dock.WindowState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("layout", name).
			Msg("failed to unmarshal layout state")
		return nil, err
	}
	return &state, nil
}

// List returns summaries for all saved layouts, most recent first.
func (s *LayoutStore) List(ctx context.Context) ([]LayoutInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, updated_at FROM layouts ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var layouts []LayoutInfo
	for rows.Next() {
		var info LayoutInfo
		if err := rows.Scan(&info.Name, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan layout row: %w", err)
		}
		layouts = append(layouts, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	return layouts, nil
}

// Delete removes the layout stored under name. Deleting an absent layout is
// not an error.
func (s *LayoutStore) Delete(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("layout", name).Msg("deleting layout snapshot")

	_, err := s.db.ExecContext(ctx, `DELETE FROM layouts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	return nil
}
