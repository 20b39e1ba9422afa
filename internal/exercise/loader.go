package exercise

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/pickex/internal/domain"
	"gopkg.in/yaml.v3"
)

// CatalogFile represents the YAML structure for a custom catalog
type CatalogFile struct {
	Chapters []struct {
		Number    int    `yaml:"number"`
		Title     string `yaml:"title"`
		Exercises int    `yaml:"exercises"`
	} `yaml:"chapters"`
	Groups []struct {
		Name     string `yaml:"name"`
		Chapters []int  `yaml:"chapters"`
	} `yaml:"groups"`
}

// LoadCatalog loads a catalog from a YAML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog builds a catalog from YAML data
func ParseCatalog(data []byte) (*Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	chapters := make([]domain.Chapter, len(file.Chapters))
	for i, ch := range file.Chapters {
		chapters[i] = domain.Chapter{
			Number:    ch.Number,
			Title:     ch.Title,
			Exercises: ch.Exercises,
		}
	}

	groups := make([]domain.Group, len(file.Groups))
	for i, g := range file.Groups {
		groups[i] = domain.Group{Name: g.Name, Chapters: g.Chapters}
	}

	return NewCatalog(chapters, groups)
}
