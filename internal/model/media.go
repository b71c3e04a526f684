package model

// MediaKind is a type of gallery item
type MediaKind int

const (
	// MediaImage is a still picture (default for unknown extensions)
	MediaImage MediaKind = iota

	// MediaVideo is a clip played in a video element
	MediaVideo
)

func (k MediaKind) String() string {
	if k == MediaVideo {
		return "video"
	}
	return "image"
}

// MarshalText encodes kind as "image" or "video"
func (k MediaKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Media describes a single gallery item. It is immutable once constructed.
type Media struct {
	kind  MediaKind
	path  string
	label string
}

// NewMedia creates media descriptor
func NewMedia(kind MediaKind, path, label string) Media {
	return Media{kind: kind, path: path, label: label}
}

// Kind returns the type of the item
func (m Media) Kind() MediaKind {
	return m.kind
}

// Path is a file name of the item, relative to the media directory
func (m Media) Path() string {
	return m.path
}

// Label is a human readable caption derived from the path
func (m Media) Label() string {
	return m.label
}

func (m Media) IsVideo() bool {
	return m.kind == MediaVideo
}

// Paths extracts paths of the list preserving order
func Paths(list []Media) []string {
	result := make([]string, len(list))
	for i := range list {
		result[i] = list[i].path
	}
	return result
}
