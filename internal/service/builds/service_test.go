package builds

import (
	"testing"
	"time"

	"github.com/RacoonMediaServer/rms-gallery/internal/gallery"
	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCatalog model.Catalog

func (c staticCatalog) Snapshot() model.Catalog {
	return model.Catalog(c).Clone()
}

func TestService_NewBuild(t *testing.T) {
	s := NewService(Settings{Catalog: staticCatalog{
		Priority: []string{"x.jpg"},
		Base:     []string{"a.jpg", "x.jpg", "b.mp4"},
		Policy:   model.PolicyPriorityFirst,
	}})

	b := s.NewBuild()
	require.NotEmpty(t, b.ID)
	assert.Equal(t, []string{"x.jpg", "a.jpg", "b.mp4"}, model.Paths(b.Items))
	assert.Equal(t, model.PolicyPriorityFirst, b.Policy)

	found, err := s.GetBuild(b.ID)
	require.NoError(t, err)
	assert.Same(t, b, found)

	other := s.NewBuild()
	assert.NotEqual(t, b.ID, other.ID)
}

func TestService_SeededInterleaved(t *testing.T) {
	c := staticCatalog{
		Priority: []string{"x.jpg", "y.jpg"},
		Base:     []string{"a1.jpg", "a2.jpg", "a3.jpg"},
		Policy:   model.PolicyInterleaved,
	}
	seeded := func() gallery.RandomSource { return gallery.NewSeededSource(5) }

	first := NewService(Settings{Catalog: c, NewRandom: seeded}).NewBuild()
	second := NewService(Settings{Catalog: c, NewRandom: seeded}).NewBuild()
	assert.Equal(t, first.Items, second.Items)
	assert.Len(t, first.Items, 5)
}

func TestService_GetBuildExpired(t *testing.T) {
	s := NewService(Settings{Catalog: staticCatalog{}, TTL: 10 * time.Millisecond})
	b := s.NewBuild()
	assert.Empty(t, b.Items)

	_, err := s.GetBuild("unknown")
	assert.ErrorIs(t, err, ErrBuildNotFound)

	require.Eventually(t, func() bool {
		_, err := s.GetBuild(b.ID)
		return err != nil
	}, time.Second, 5*time.Millisecond)
}
