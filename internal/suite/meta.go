package suite

import (
	"os"

	"go.yaml.in/yaml/v2"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

// Meta describes the benchmark. It can be overridden from a YAML file.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Sizes       []Size `yaml:"sizes"`
}

// DefaultMeta returns the built-in benchmark description.
func DefaultMeta() Meta {
	sizes := make([]Size, len(DefaultSizes))
	copy(sizes, DefaultSizes)
	return Meta{
		Title: "Fibonacci",
		Description: "Compute the N-th Fibonacci number with naive recursion (once), " +
			"tail recursion (M times) and iteration (M times), folding the repeated " +
			"results into a checksum modulo 2147483647.",
		Sizes: sizes,
	}
}

// LoadMeta reads path and merges it over DefaultMeta. An empty path returns
// the defaults. Sizes in the file replace presets of the same name and add
// new ones; empty title or description keep the default.
func LoadMeta(path string) (Meta, error) {
	meta := DefaultMeta()
	if path == "" {
		return meta, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, apperrors.IOError{Path: path, Cause: err}
	}
	var file Meta
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return Meta{}, apperrors.NewConfigError("%s: %v", path, err)
	}

	if file.Title != "" {
		meta.Title = file.Title
	}
	if file.Description != "" {
		meta.Description = file.Description
	}
	for _, s := range file.Sizes {
		if s.Name == "" {
			return Meta{}, apperrors.NewConfigError("%s: size without a name", path)
		}
		meta.Sizes = mergeSize(meta.Sizes, s)
	}
	return meta, nil
}

func mergeSize(sizes []Size, s Size) []Size {
	for i := range sizes {
		if sizes[i].Name == s.Name {
			sizes[i] = s
			return sizes
		}
	}
	return append(sizes, s)
}
