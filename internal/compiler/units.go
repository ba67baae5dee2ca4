package compiler

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceExt is the extension of source files picked up from directories
const SourceExt = ".ssa"

// LoadUnits reads the unit at path, or every source file directly inside
// path when it is a directory
func LoadUnits(path string) ([]Unit, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = filepath.Glob(filepath.Join(path, "*"+SourceExt))
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no %s files in %s", SourceExt, path)
		}
	}

	units := make([]Unit, 0, len(paths))
	for _, p := range paths {
		source, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		units = append(units, Unit{Path: p, Source: string(source)})
	}
	return units, nil
}
