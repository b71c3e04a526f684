package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RacoonMediaServer/rms-gallery/internal/lock"
	"github.com/RacoonMediaServer/rms-gallery/internal/manifest"
	"github.com/RacoonMediaServer/rms-gallery/internal/model"
)

const lockTimeout = 2 * time.Minute

// ErrReadOnly is returned on update when no database is configured
var ErrReadOnly = errors.New("catalog is read-only")

// Settings holds all sources of the catalog. Database, Directory and Manifest are optional.
type Settings struct {
	Name     string
	Policy   model.Policy
	Priority []string
	Base     []string
	Manifest string

	Database  Database
	Directory DirectoryManager

	// Locker serializes work on catalogs by name, may be shared between managers
	Locker lock.Locker
}

// Manager keeps the current catalog assembled from configured sources
type Manager struct {
	s  Settings
	lk lock.Locker

	mu      sync.RWMutex
	current model.Catalog
}

func NewManager(settings Settings) *Manager {
	lk := settings.Locker
	if lk == nil {
		lk = lock.NewLocker()
	}
	return &Manager{
		s:  settings,
		lk: lk,
		current: model.Catalog{
			Name:   settings.Name,
			Policy: settings.Policy,
		},
	}
}

// Snapshot returns copy of the current catalog
func (m *Manager) Snapshot() model.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Clone()
}

// Refresh assembles catalog again. Lists stored in the database take precedence over manifest and configuration,
// files found in the media directory are always appended to the base list.
func (m *Manager) Refresh(ctx context.Context) error {
	u, err := m.lock(ctx)
	if err != nil {
		return err
	}
	defer u.Unlock()

	return m.refresh(ctx)
}

func (m *Manager) lock(ctx context.Context) (lock.Unlocker, error) {
	u, err := lock.TimedLock(ctx, m.lk, m.s.Name, lockTimeout)
	if err != nil {
		return nil, fmt.Errorf("wait for catalog '%s' failed: %w", m.s.Name, err)
	}
	return u, nil
}

func (m *Manager) refresh(ctx context.Context) error {
	c, err := m.load(ctx)
	if err != nil {
		return err
	}

	if m.s.Directory != nil {
		files, err := m.s.Directory.List()
		if err != nil {
			return fmt.Errorf("scan media failed: %w", err)
		}
		c.Base = append(c.Base, files...)
	}

	m.mu.Lock()
	m.current = c
	m.mu.Unlock()
	return nil
}

func (m *Manager) load(ctx context.Context) (model.Catalog, error) {
	c := model.Catalog{
		Name:     m.s.Name,
		Policy:   m.s.Policy,
		Priority: append([]string(nil), m.s.Priority...),
		Base:     append([]string(nil), m.s.Base...),
	}

	if m.s.Database != nil {
		stored, err := m.s.Database.GetCatalog(ctx, m.s.Name)
		if err != nil {
			return c, fmt.Errorf("load catalog '%s' failed: %w", m.s.Name, err)
		}
		if stored != nil {
			return stored.Clone(), nil
		}
	}

	if m.s.Manifest != "" {
		mf, hasPolicy, err := manifest.Load(m.s.Manifest)
		if err != nil {
			return c, err
		}
		c.Priority = append(mf.Priority, c.Priority...)
		c.Base = append(mf.Base, c.Base...)
		if hasPolicy {
			c.Policy = mf.Policy
		}
	}

	return c, nil
}

// Update replaces lists of the catalog in the database. Concurrent updates and refreshes of the same catalog
// are applied one by one.
func (m *Manager) Update(ctx context.Context, c model.Catalog) error {
	if m.s.Database == nil {
		return ErrReadOnly
	}

	u, err := m.lock(ctx)
	if err != nil {
		return err
	}
	defer u.Unlock()

	c = c.Clone()
	c.Name = m.s.Name
	if err := m.s.Database.PutCatalog(ctx, &c); err != nil {
		return fmt.Errorf("store catalog '%s' failed: %w", c.Name, err)
	}

	return m.refresh(ctx)
}

// IsReadOnly tells whether Update is supported
func (m *Manager) IsReadOnly() bool {
	return m.s.Database == nil
}
