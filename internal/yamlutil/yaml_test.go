package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Workers int    `yaml:"workers"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := UnmarshalStrict([]byte("name: site\nworkers: 2\n"), &cfg)
	if err != nil {
		t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
	}
	if cfg.Name != "site" || cfg.Workers != 2 {
		t.Errorf("UnmarshalStrict() = %+v, want {site 2}", cfg)
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &cfg)
	if err == nil {
		t.Error("UnmarshalStrict() should reject unknown fields")
	}
}

func TestUnmarshalStrict_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := UnmarshalStrict(nil, &cfg); !errors.Is(err, ErrNilData) {
			t.Errorf("UnmarshalStrict(nil) error = %v, want %v", err, ErrNilData)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := UnmarshalStrict([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("UnmarshalStrict(.., nil) error = %v, want %v", err, ErrNilDestination)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		data := []byte("name: " + strings.Repeat("a", MaxInputSize))
		if err := UnmarshalStrict(data, &cfg); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("UnmarshalStrict(big) error = %v, want %v", err, ErrInputTooLarge)
		}
	})
}
