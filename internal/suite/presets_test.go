package suite

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

func TestDefaultSizes(t *testing.T) {
	t.Parallel()
	want := []Size{
		{Name: "S", N: 34, M: 145806},
		{Name: "M", N: 36, M: 306557},
		{Name: "L", N: 38, M: 644537},
	}
	if len(DefaultSizes) != len(want) {
		t.Fatalf("len(DefaultSizes) = %d, want %d", len(DefaultSizes), len(want))
	}
	for i := range want {
		if DefaultSizes[i] != want[i] {
			t.Errorf("DefaultSizes[%d] = %+v, want %+v", i, DefaultSizes[i], want[i])
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		names   []string
		want    []string
		wantErr bool
	}{
		{"all in order", []string{"S", "M", "L"}, []string{"S", "M", "L"}, false},
		{"keeps requested order", []string{"L", "S"}, []string{"L", "S"}, false},
		{"case insensitive", []string{"m"}, []string{"M"}, false},
		{"empty", nil, nil, false},
		{"unknown", []string{"S", "XL"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tt.names, DefaultSizes)
			if tt.wantErr {
				var cfgErr apperrors.ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("Resolve error = %v, want ConfigError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Resolve returned %d sizes, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("size %d = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}
