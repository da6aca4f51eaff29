// Package seed loads lookup records from YAML or TOML files into a record store.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
	"github.com/custodia-labs/lookup/internal/logger"
)

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown seed format")

// File is the on-disk shape of a seed file.
type File struct {
	Records []domain.Record `yaml:"records" toml:"records"`
}

// LoadFile reads records from path. The format is chosen by extension.
func LoadFile(path string) ([]domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes records from data in the format named by ext
// (".yaml", ".yml" or ".toml").
func Parse(data []byte, ext string) ([]domain.Record, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decoding yaml seed: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decoding toml seed: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	for i, r := range f.Records {
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("%w: record %d has no title", domain.ErrInvalidInput, i+1)
		}
	}
	return f.Records, nil
}

// Import saves records into store, assigning a UUID to records without an id.
// It returns the number of records saved.
func Import(ctx context.Context, store driven.RecordStore, records []domain.Record) (int, error) {
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
		if err := store.Save(ctx, records[i]); err != nil {
			return i, fmt.Errorf("saving %q: %w", records[i].Title, err)
		}
	}
	logger.Debug("imported %d records", len(records))
	return len(records), nil
}
