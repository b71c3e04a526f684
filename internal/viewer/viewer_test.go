package viewer

import (
	"testing"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	type testCase struct {
		current, delta, n int
		next              int
		ok                bool
	}

	testCases := []testCase{
		{current: 0, delta: -1, n: 5, next: 4, ok: true},
		{current: 4, delta: 1, n: 5, next: 0, ok: true},
		{current: 2, delta: 1, n: 5, next: 3, ok: true},
		{current: 2, delta: -7, n: 5, next: 0, ok: true},
		{current: 1, delta: 12, n: 5, next: 3, ok: true},
		{current: 0, delta: 1, n: 1, next: 0, ok: true},
		{current: 0, delta: 1, n: 0, next: -1, ok: false},
		{current: -1, delta: 1, n: 3, next: -1, ok: false},
		{current: 3, delta: 1, n: 3, next: -1, ok: false},
	}

	for i, tc := range testCases {
		next, ok := Step(tc.current, tc.delta, tc.n)
		assert.Equal(t, tc.ok, ok, "Test %d failed", i)
		assert.Equal(t, tc.next, next, "Test %d failed", i)
	}
}

func TestViewer(t *testing.T) {
	items := []model.Media{
		model.NewMedia(model.MediaImage, "a.jpg", "a"),
		model.NewMedia(model.MediaVideo, "b.mp4", "b"),
		model.NewMedia(model.MediaImage, "c.jpg", "c"),
	}
	v := New(items)
	assert.False(t, v.IsOpen())

	_, ok := v.Next(1)
	assert.False(t, ok)
	assert.Equal(t, -1, v.Current())

	m, ok := v.Open(0)
	assert.True(t, ok)
	assert.Equal(t, "a.jpg", m.Path())

	m, ok = v.Next(-1)
	assert.True(t, ok)
	assert.Equal(t, "c.jpg", m.Path())
	assert.Equal(t, 2, v.Current())

	m, ok = v.Next(1)
	assert.True(t, ok)
	assert.Equal(t, "a.jpg", m.Path())

	_, ok = v.Open(10)
	assert.False(t, ok)
	assert.Equal(t, 0, v.Current())

	v.Close()
	_, ok = v.Next(1)
	assert.False(t, ok)
}

func TestViewer_Empty(t *testing.T) {
	v := New(nil)
	_, ok := v.Open(0)
	assert.False(t, ok)
	_, ok = v.Next(1)
	assert.False(t, ok)
	assert.False(t, v.IsOpen())
}
