package builds

import (
	"errors"
	"time"

	"github.com/RacoonMediaServer/rms-gallery/internal/gallery"
	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go-micro.dev/v4/logger"
)

const defaultBuildTTL = 30 * time.Minute

// ErrBuildNotFound means build has expired or never existed
var ErrBuildNotFound = errors.New("build not found")

// Build is an ordered gallery sequence shown on a single page view
type Build struct {
	ID        string
	Items     []model.Media
	Policy    model.Policy
	CreatedAt time.Time
}

// Settings holds all dependencies of service
type Settings struct {
	Catalog Catalog

	// TTL defines how long the build is available for navigation
	TTL time.Duration

	// NewRandom creates random source for every build, time-seeded source by default
	NewRandom func() gallery.RandomSource
}

// Service makes gallery builds and keeps them for the viewer
type Service struct {
	catalog   Catalog
	cache     *cache.Cache
	newRandom func() gallery.RandomSource
}

func NewService(settings Settings) *Service {
	ttl := settings.TTL
	if ttl <= 0 {
		ttl = defaultBuildTTL
	}
	newRandom := settings.NewRandom
	if newRandom == nil {
		newRandom = gallery.NewRandomSource
	}

	return &Service{
		catalog:   settings.Catalog,
		cache:     cache.New(ttl, 2*ttl),
		newRandom: newRandom,
	}
}

// NewBuild orders current catalog. Interleaved catalogs are shuffled again on every call.
func (s *Service) NewBuild() *Build {
	c := s.catalog.Snapshot()
	b := &Build{
		ID: uuid.NewString(),
		Items: gallery.Build(gallery.Input{
			Base:     c.Base,
			Priority: c.Priority,
			Policy:   c.Policy,
		}, s.newRandom()),
		Policy:    c.Policy,
		CreatedAt: time.Now(),
	}

	s.cache.Set(b.ID, b, cache.DefaultExpiration)
	logger.Debugf("Gallery build %s: %d items, policy %s", b.ID, len(b.Items), b.Policy)
	return b
}

// GetBuild returns previously made build
func (s *Service) GetBuild(id string) (*Build, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrBuildNotFound
	}
	return v.(*Build), nil
}
