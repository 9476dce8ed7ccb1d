package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/occupancy/internal/grid"
	"github.com/banshee-data/occupancy/internal/monitoring"
	"github.com/banshee-data/occupancy/internal/timeutil"
)

// ErrNotFound is returned when no snapshot has the requested ID.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one stored grid. Size and Occupied are denormalised from Grid
// so listings do not need to decode grid_json.
type Snapshot struct {
	ID             string     `json:"id"`
	Label          string     `json:"label"`
	Size           int        `json:"size"`
	Occupied       int        `json:"occupied"`
	TakenUnixNanos int64      `json:"taken_unix_nanos"`
	Grid           *grid.Grid `json:"grid"`
}

// Taken returns the capture time as a time.Time.
func (s *Snapshot) Taken() time.Time { return time.Unix(0, s.TakenUnixNanos) }

// SnapshotStore provides persistence for grid snapshots.
type SnapshotStore struct {
	db    *sql.DB
	clock timeutil.Clock
}

// NewSnapshotStore creates a new SnapshotStore that stamps snapshots with
// the wall clock.
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return NewSnapshotStoreWithClock(db, timeutil.RealClock{})
}

// NewSnapshotStoreWithClock creates a SnapshotStore that reads capture
// times from clock.
func NewSnapshotStoreWithClock(db *sql.DB, clock timeutil.Clock) *SnapshotStore {
	return &SnapshotStore{db: db, clock: clock}
}

// Insert stores a copy of g under label and returns the new snapshot.
// The snapshot ID is a freshly generated UUID.
func (s *SnapshotStore) Insert(label string, g *grid.Grid) (*Snapshot, error) {
	if g == nil {
		return nil, fmt.Errorf("insert snapshot: nil grid")
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = "unlabelled"
	}

	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	snap := &Snapshot{
		ID:             uuid.New().String(),
		Label:          label,
		Size:           g.Size(),
		Occupied:       g.Len(),
		TakenUnixNanos: s.clock.Now().UnixNano(),
		Grid:           g.Copy(),
	}

	query := `
		INSERT INTO grid_snapshots (
			snapshot_id, label, size, occupied_count, grid_json, taken_unix_nanos
		) VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.Exec(query,
		snap.ID,
		snap.Label,
		snap.Size,
		snap.Occupied,
		string(data),
		snap.TakenUnixNanos,
	); err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	monitoring.Opsf("stored snapshot %s label=%q size=%d occupied=%d", snap.ID, snap.Label, snap.Size, snap.Occupied)
	return snap, nil
}

// Get returns the snapshot with the given ID.
func (s *SnapshotStore) Get(id string) (*Snapshot, error) {
	query := `
		SELECT snapshot_id, label, size, occupied_count, grid_json, taken_unix_nanos
		FROM grid_snapshots
		WHERE snapshot_id = ?
	`
	snap, err := scanSnapshot(s.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	return snap, nil
}

// List returns up to limit snapshots, newest first.
func (s *SnapshotStore) List(limit int) ([]*Snapshot, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("list snapshots: limit must be positive, got %d", limit)
	}
	query := `
		SELECT snapshot_id, label, size, occupied_count, grid_json, taken_unix_nanos
		FROM grid_snapshots
		ORDER BY taken_unix_nanos DESC, snapshot_id
		LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("list snapshots: %w", err)
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return out, nil
}

// Delete removes the snapshot with the given ID.
func (s *SnapshotStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM grid_snapshots WHERE snapshot_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete snapshot %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete snapshot %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	monitoring.Opsf("deleted snapshot %s", id)
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var (
		snap     Snapshot
		gridJSON string
	)
	if err := row.Scan(
		&snap.ID,
		&snap.Label,
		&snap.Size,
		&snap.Occupied,
		&gridJSON,
		&snap.TakenUnixNanos,
	); err != nil {
		return nil, err
	}

	var g grid.Grid
	if err := json.Unmarshal([]byte(gridJSON), &g); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", snap.ID, err)
	}
	if g.Size() != snap.Size {
		return nil, fmt.Errorf("snapshot %s: stored size %d disagrees with grid size %d", snap.ID, snap.Size, g.Size())
	}
	snap.Grid = &g
	return &snap, nil
}
