package catalog

import (
	"context"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
)

// Database stores catalogs edited through the API
type Database interface {
	GetCatalog(ctx context.Context, name string) (*model.Catalog, error)
	PutCatalog(ctx context.Context, c *model.Catalog) error
}

// DirectoryManager gives access to media files on a disk
type DirectoryManager interface {
	Directory() string
	List() ([]string, error)
}
