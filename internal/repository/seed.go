package repository

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"bundle-storefront/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed seed/packages.yaml
var defaultSeed []byte

type seedFile struct {
	Packages []*model.InsertPackage `yaml:"packages"`
}

// DefaultSeed returns the bundles the storefront ships with.
func DefaultSeed() ([]*model.InsertPackage, error) {
	return ParseSeed(bytes.NewReader(defaultSeed))
}

func LoadSeedFile(path string) ([]*model.InsertPackage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return ParseSeed(f)
}

func ParseSeed(r io.Reader) ([]*model.InsertPackage, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed seedFile
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	for i, pkg := range seed.Packages {
		if err := pkg.Validate(); err != nil {
			return nil, fmt.Errorf("seed package %d: %w", i, err)
		}
	}

	return seed.Packages, nil
}
