package model

import "time"

// Catalog is a source of the gallery: which files to show and how to order them
type Catalog struct {
	// Name identifies the gallery
	Name string `bson:"_id,omitempty" json:"name"`

	// Priority holds files designated for special placement
	Priority []string `bson:"priority" json:"priority"`

	// Base holds regular files of the gallery
	Base []string `bson:"base" json:"base"`

	// Policy defines placement of priority files
	Policy Policy `bson:"policy" json:"policy"`

	// UpdatedAt is a time of the last modification in the database
	UpdatedAt *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Clone makes deep copy of the catalog
func (c Catalog) Clone() Catalog {
	result := c
	result.Priority = append([]string(nil), c.Priority...)
	result.Base = append([]string(nil), c.Base...)
	if c.UpdatedAt != nil {
		ts := *c.UpdatedAt
		result.UpdatedAt = &ts
	}
	return result
}
