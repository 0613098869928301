// Package flightdata has the dataset loaders, the synthetic sample
// generator and the static market context.
package flightdata

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// FileSource reads raw flight records from a local dataset file.
// The format is chosen by extension: .json, .csv or .xlsx.
type FileSource struct {
	path string
}

var _ contract.RecordSource = &FileSource{} // Compile-time check

// SampleSource generates a synthetic dataset on demand.
type SampleSource struct {
	opts SampleOptions
}

var _ contract.RecordSource = &SampleSource{} // Compile-time check

// NewSource selects the record source for the configured input:
// a dataset file when a path is set, otherwise the sample generator.
func NewSource(cfg *contract.Config) contract.RecordSource {
	if cfg.DataPath == "" {
		return &SampleSource{opts: SampleOptionsFromConfig(cfg)}
	}
	return &FileSource{path: cfg.DataPath}
}

// NewFileSource creates a record source for a dataset file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load implements the RecordSource interface.
func (s *FileSource) Load(ctx context.Context) ([]schema.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".json":
		return loadJSONRecords(s.path)
	case ".csv":
		return loadCSVRecords(s.path)
	case ".xlsx":
		return loadXLSXRecords(s.path)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", filepath.Ext(s.path))
	}
}

// Describe implements the RecordSource interface.
func (s *FileSource) Describe() string {
	return filepath.Base(s.path)
}

// NewSampleSource creates a record source backed by the sample generator.
func NewSampleSource(opts SampleOptions) *SampleSource {
	return &SampleSource{opts: opts}
}

// Load implements the RecordSource interface.
func (s *SampleSource) Load(ctx context.Context) ([]schema.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GenerateSample(s.opts), nil
}

// Describe implements the RecordSource interface.
func (s *SampleSource) Describe() string {
	return "sample"
}
