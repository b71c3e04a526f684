package builds

import "github.com/RacoonMediaServer/rms-gallery/internal/model"

// Catalog provides lists of the gallery
type Catalog interface {
	Snapshot() model.Catalog
}
