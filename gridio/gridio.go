// Package gridio loads raw puzzle grids from JSON or YAML and converts
// them to puzzle collections, with optional colour-count validation.
//
// A raw grid is a list of containers, each a list of 0..Capacity colour
// name strings; "?" and "UNKNOWN" mark hidden items. Files route by
// extension: .json, .yaml, and .yml are accepted.
package gridio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chromasort/puzzle"
)

// Sentinel errors for grid loading.
var (
	// ErrInvalidColourCount is returned in validating mode when any colour
	// string appears a number of times other than puzzle.Capacity.
	ErrInvalidColourCount = errors.New("gridio: invalid colour count")

	// ErrUnsupportedExtension is returned for file types the router does
	// not recognise.
	ErrUnsupportedExtension = errors.New("gridio: unsupported file extension")
)

// Option configures loading.
type Option func(*options)

type options struct {
	rejectInvalid bool
}

// WithValidation makes loading fail with ErrInvalidColourCount unless every
// colour string in the grid appears exactly puzzle.Capacity times.
func WithValidation() Option {
	return func(o *options) { o.rejectInvalid = true }
}

// Decode reads a JSON raw grid from r.
func Decode(r io.Reader) ([][]string, error) {
	var grid [][]string
	if err := json.NewDecoder(r).Decode(&grid); err != nil {
		return nil, fmt.Errorf("gridio: decode json: %w", err)
	}

	return grid, nil
}

// DecodeYAML reads a YAML raw grid from r.
func DecodeYAML(r io.Reader) ([][]string, error) {
	var grid [][]string
	if err := yaml.NewDecoder(r).Decode(&grid); err != nil {
		return nil, fmt.Errorf("gridio: decode yaml: %w", err)
	}

	return grid, nil
}

// Validate checks that every distinct string in the grid appears exactly
// puzzle.Capacity times. Hidden markers count like any other string.
func Validate(grid [][]string) error {
	counts := make(map[string]int)
	for _, row := range grid {
		for _, item := range row {
			counts[item]++
		}
	}
	for name, n := range counts {
		if n != puzzle.Capacity {
			return fmt.Errorf("%w: %s appears %d times", ErrInvalidColourCount, name, n)
		}
	}

	return nil
}

// Load reads a JSON grid from r and builds a collection.
// With WithValidation, a grid failing the colour-count check is rejected
// before construction.
func Load(r io.Reader, opts ...Option) (*puzzle.Collection, error) {
	grid, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return build(grid, opts)
}

// LoadFile routes path by extension (.json, .yaml, .yml) and builds a
// collection the same way Load does.
func LoadFile(path string, opts ...Option) (*puzzle.Collection, error) {
	grid, err := LoadRawFile(path)
	if err != nil {
		return nil, err
	}

	return build(grid, opts)
}

// LoadRawFile reads the raw grid without constructing a collection, so
// hidden markers survive untouched. Routing matches LoadFile.
func LoadRawFile(path string) ([][]string, error) {
	ext := filepath.Ext(path)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: open %s: %w", path, err)
	}
	defer f.Close()

	if ext == ".json" {
		return Decode(f)
	}

	return DecodeYAML(f)
}

// SaveGrid writes a raw grid to path as indented JSON.
func SaveGrid(path string, grid [][]string) error {
	out, err := json.MarshalIndent(grid, "", "    ")
	if err != nil {
		return fmt.Errorf("gridio: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("gridio: write %s: %w", path, err)
	}

	return nil
}

// build applies options and constructs the collection.
func build(grid [][]string, opts []Option) (*puzzle.Collection, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rejectInvalid {
		if err := Validate(grid); err != nil {
			return nil, err
		}
	}

	return puzzle.New(grid)
}
