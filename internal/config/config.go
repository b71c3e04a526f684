package config

import (
	"time"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/RacoonMediaServer/rms-packages/pkg/configuration"
)

// Http is settings of the gallery web server
type Http struct {
	Host string
	Port int
}

// Gallery describes which media are shown and how
type Gallery struct {
	// Name of the catalog in the database
	Name string

	// Title is shown on the gallery page
	Title string

	// Directory is a path to media files, all of them are added to the base list
	Directory string

	// Manifest is an optional YAML file with lists
	Manifest string

	// Policy is "priority-first" or "interleaved"
	Policy string

	// Priority lists files for special placement
	Priority []string

	// Base lists regular files
	Base []string

	// EagerTiles is a count of first tiles requested with high fetch priority
	EagerTiles int `json:"eager-tiles"`

	// RefreshInterval defines how often catalog is rebuilt from sources, minutes
	RefreshInterval uint `json:"refresh-interval"`
}

// RefreshPeriod returns RefreshInterval as duration
func (g Gallery) RefreshPeriod() time.Duration {
	return time.Duration(g.RefreshInterval) * time.Minute
}

// OrderingPolicy parses Policy. Interleaved ordering is used when nothing is set.
func (g Gallery) OrderingPolicy() (model.Policy, error) {
	if g.Policy == "" {
		return model.PolicyInterleaved, nil
	}
	return model.ParsePolicy(g.Policy)
}

// Configuration represents entire service configuration
type Configuration struct {
	// MongoDB connection string, optional
	Database string

	Http Http

	Gallery Gallery
}

const (
	defaultPort            = 8080
	defaultGalleryName     = "main"
	defaultEagerTiles      = 6
	defaultRefreshInterval = 10
)

var config = Configuration{
	Http: Http{Port: defaultPort},
	Gallery: Gallery{
		Name:            defaultGalleryName,
		Directory:       "/var/lib/rms/gallery",
		EagerTiles:      defaultEagerTiles,
		RefreshInterval: defaultRefreshInterval,
	},
}

// Load open and parses configuration file
func Load(configFilePath string) error {
	if err := configuration.Load(configFilePath, &config); err != nil {
		return err
	}
	config.applyDefaults()
	return nil
}

// Config returns loaded configuration
func Config() Configuration {
	return config
}

func (c *Configuration) applyDefaults() {
	if c.Http.Port == 0 {
		c.Http.Port = defaultPort
	}
	if c.Gallery.Name == "" {
		c.Gallery.Name = defaultGalleryName
	}
	if c.Gallery.EagerTiles <= 0 {
		c.Gallery.EagerTiles = defaultEagerTiles
	}
	if c.Gallery.RefreshInterval == 0 {
		c.Gallery.RefreshInterval = defaultRefreshInterval
	}
}
