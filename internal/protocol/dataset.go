package protocol

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_seed.json
var defaultSeed []byte

// DefaultDataset returns the seed bundled with the binary
func DefaultDataset() (*Dataset, error) {
	return DecodeDataset(defaultSeed, "json")
}

// DecodeDataset parses a seed dataset. Format is "json" or "yaml".
func DecodeDataset(data []byte, format string) (*Dataset, error) {
	var ds Dataset
	switch strings.ToLower(format) {
	case "json", "":
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("decode seed json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("decode seed yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed format %q", format)
	}

	if len(ds.Results) == 0 {
		return nil, ErrNoResults
	}
	for i := range ds.Results {
		ds.Results[i].Room.dedupe()
	}
	return &ds, nil
}

// LoadDatasetFile reads a seed from disk, picking the format from the extension
func LoadDatasetFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	return DecodeDataset(data, format)
}
