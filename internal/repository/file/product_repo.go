// Package file reads product pages from a YAML export, for builds that run
// without database access.
package file

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"kamenpro-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

type productFile struct {
	Products []domain.ProductPage `yaml:"products"`
}

type productRepo struct {
	path string
}

func NewProductRepository(path string) domain.ProductSource {
	return &productRepo{path: path}
}

func (r *productRepo) Name() string {
	return "file"
}

func (r *productRepo) ListProductPages(ctx context.Context) ([]domain.ProductPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.path == "" {
		return nil, fmt.Errorf("no products file configured")
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var f productFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse products file %s: %w", r.path, err)
	}

	for i, p := range f.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("product #%d (%q) has no id", i+1, p.Name)
		}
	}
	return f.Products, nil
}
