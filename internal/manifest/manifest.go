package manifest

import (
	"fmt"
	"os"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"gopkg.in/yaml.v3"
)

type document struct {
	Name     string   `yaml:"name"`
	Policy   string   `yaml:"policy"`
	Priority []string `yaml:"priority"`
	Base     []string `yaml:"base"`
}

// Load reads gallery lists from YAML file. Policy is left unset when the file has none.
func Load(path string) (catalog model.Catalog, hasPolicy bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog, false, fmt.Errorf("read manifest '%s' failed: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes manifest content
func Parse(data []byte) (catalog model.Catalog, hasPolicy bool, err error) {
	var doc document
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return catalog, false, fmt.Errorf("decode manifest failed: %w", err)
	}

	catalog = model.Catalog{
		Name:     doc.Name,
		Priority: doc.Priority,
		Base:     doc.Base,
	}
	if doc.Policy != "" {
		if catalog.Policy, err = model.ParsePolicy(doc.Policy); err != nil {
			return catalog, false, err
		}
		hasPolicy = true
	}
	return catalog, hasPolicy, nil
}
