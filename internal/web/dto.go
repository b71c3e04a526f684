package web

import (
	"net/url"
	"strings"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
)

type mediaItem struct {
	Kind  model.MediaKind `json:"kind"`
	Path  string          `json:"path"`
	Label string          `json:"label"`
	URL   string          `json:"url"`
}

type mediaResponse struct {
	Build  string       `json:"build"`
	Policy model.Policy `json:"policy"`
	Items  []mediaItem  `json:"items"`
}

type catalogResponse struct {
	model.Catalog
	ReadOnly bool `json:"readOnly"`
}

type catalogRequest struct {
	Policy   string   `json:"policy"`
	Priority []string `json:"priority"`
	Base     []string `json:"base"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func convertItems(items []model.Media) []mediaItem {
	result := make([]mediaItem, len(items))
	for i, m := range items {
		result[i] = mediaItem{
			Kind:  m.Kind(),
			Path:  m.Path(),
			Label: m.Label(),
			URL:   mediaURL(m.Path()),
		}
	}
	return result
}

// mediaURL keeps absolute URLs as is, other paths are served from the media directory
func mediaURL(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i := range segments {
		segments[i] = url.PathEscape(segments[i])
	}
	return "/media/" + strings.Join(segments, "/")
}
