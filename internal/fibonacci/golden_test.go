package fibonacci

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type goldenFile struct {
	MaxN    uint64        `json:"max_n"`
	Entries []goldenEntry `json:"entries"`
}

type goldenEntry struct {
	N       uint64 `json:"n"`
	Exact   string `json:"exact"`
	Wrapped uint64 `json:"wrapped"`
}

func loadGolden(t *testing.T) goldenFile {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "golden.json"))
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	var g goldenFile
	if err := json.Unmarshal(data, &g); err != nil {
		t.Fatalf("decoding golden file: %v", err)
	}
	return g
}

// TestGolden compares every strategy against testdata/golden.json
// (regenerate with `go run ./cmd/generate-golden`).
func TestGolden(t *testing.T) {
	t.Parallel()
	g := loadGolden(t)
	if uint64(len(g.Entries)) != g.MaxN+1 {
		t.Fatalf("golden file has %d entries, want %d", len(g.Entries), g.MaxN+1)
	}

	for _, e := range g.Entries {
		if got := Iter(e.N); got != e.Wrapped {
			t.Errorf("Iter(%d) = %d, golden %d", e.N, got, e.Wrapped)
		}
		if got := TailRec(e.N); got != e.Wrapped {
			t.Errorf("TailRec(%d) = %d, golden %d", e.N, got, e.Wrapped)
		}
		if e.N <= 30 {
			if got := Naive(e.N); got != e.Wrapped {
				t.Errorf("Naive(%d) = %d, golden %d", e.N, got, e.Wrapped)
			}
		}
	}
}
