package suite

import (
	"strings"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

// Size is a named (N, M) input pair.
type Size struct {
	Name string `yaml:"name"`
	N    uint64 `yaml:"n"`
	M    uint64 `yaml:"m"`
}

// DefaultSizes are the canonical presets. M grows as 1.45^k so the linear
// stages land in a measurable range: int(1.45^32), int(1.45^34), int(1.45^36).
var DefaultSizes = []Size{
	{Name: "S", N: 34, M: 145806},
	{Name: "M", N: 36, M: 306557},
	{Name: "L", N: 38, M: 644537},
}

// Resolve looks up each name in presets, keeping the requested order.
// Names are matched case-insensitively; an unknown name is a ConfigError.
func Resolve(names []string, presets []Size) ([]Size, error) {
	sizes := make([]Size, 0, len(names))
	for _, name := range names {
		found := false
		for _, p := range presets {
			if strings.EqualFold(p.Name, name) {
				sizes = append(sizes, p)
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.NewConfigError("unknown size %q", name)
		}
	}
	return sizes, nil
}
