// Package state persists the last settled position of each named sheet.
package state

import (
	"database/sql"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/sheets/internal/position"
)

const (
	appName      = "sheets"
	dbFileName   = "sheets.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	now       func() time.Time
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]SavedPosition
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the database at dbPath, creating it if needed.
func OpenPath(dbPath string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, now: time.Now, pending: make(map[string]SavedPosition)}, nil
}

// Close flushes pending saves and closes the database.
func (m *Manager) Close() error {
	flushErr := m.Flush()
	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// Position returns the saved position of the named sheet. A pending save
// wins over the database.
func (m *Manager) Position(name string) (position.Position, bool, error) {
	m.saveMu.Lock()
	p, ok := m.pending[name]
	m.saveMu.Unlock()
	if ok {
		return p.Position, true, nil
	}

	saved, err := getPosition(m.db, name)
	if err != nil || saved == nil {
		return position.Closed, false, err
	}
	return saved.Position, true, nil
}

// Positions lists every saved position, most recent first. Pending saves
// are flushed first.
func (m *Manager) Positions() ([]SavedPosition, error) {
	if err := m.Flush(); err != nil {
		return nil, err
	}
	return listPositions(m.db)
}

// SavePosition records p for the named sheet. Writes are debounced: a burst
// of saves results in a single transaction.
func (m *Manager) SavePosition(name string, p position.Position) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[name] = SavedPosition{Name: name, Position: p, UpdatedAt: m.now()}

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		if err := m.Flush(); err != nil {
			slog.Error("state: save positions", "error", err)
		}
	})
}

// Forget removes the saved position of the named sheet.
func (m *Manager) Forget(name string) error {
	m.saveMu.Lock()
	delete(m.pending, name)
	m.saveMu.Unlock()
	return deletePosition(m.db, name)
}

// Flush writes pending saves now.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = make(map[string]SavedPosition)
	m.saveMu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	names := slices.Sorted(maps.Keys(pending))
	batch := make([]SavedPosition, 0, len(names))
	for _, name := range names {
		batch = append(batch, pending[name])
	}
	return savePositions(m.db, batch)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
