package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RacoonMediaServer/rms-gallery/internal/analysis"
)

const mediaPerms = 0755

// ErrOutsideRoot means requested file escapes media directory
var ErrOutsideRoot = errors.New("path is outside of media directory")

// Manager is responsible for media files on a disk
type Manager struct {
	dir string
}

// NewManager creates Manager and media directory if it is missing
func NewManager(dir string) (*Manager, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve media directory failed: %w", err)
	}
	if err = os.MkdirAll(abs, mediaPerms); err != nil {
		return nil, fmt.Errorf("create media directory failed: %w", err)
	}
	return &Manager{dir: abs}, nil
}

// Directory returns absolute path to media directory
func (m *Manager) Directory() string {
	return m.dir
}

// List returns names of media files in the directory, sorted by name
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read media directory failed: %w", err)
	}

	result := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !analysis.IsMediaFile(e.Name()) {
			continue
		}
		result = append(result, e.Name())
	}
	sort.Strings(result)
	return result, nil
}

// Resolve returns absolute path of the media file
func (m *Manager) Resolve(name string) (string, error) {
	name = filepath.FromSlash(strings.TrimPrefix(name, "/"))
	if name == "" || filepath.IsAbs(name) {
		return "", ErrOutsideRoot
	}
	full := filepath.Join(m.dir, name)
	if !isSubpath(m.dir, full) {
		return "", ErrOutsideRoot
	}
	return full, nil
}

func isSubpath(root, child string) bool {
	rel, err := filepath.Rel(root, child)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
