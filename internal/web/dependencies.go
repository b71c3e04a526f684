package web

import (
	"context"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/RacoonMediaServer/rms-gallery/internal/service/builds"
)

// Builds makes and keeps ordered gallery sequences
type Builds interface {
	NewBuild() *builds.Build
	GetBuild(id string) (*builds.Build, error)
}

// Catalog gives access to lists of the gallery
type Catalog interface {
	Snapshot() model.Catalog
	Update(ctx context.Context, c model.Catalog) error
	IsReadOnly() bool
}

// MediaStorage maps media paths to files on a disk
type MediaStorage interface {
	Resolve(name string) (string, error)
}
