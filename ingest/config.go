// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ingest

import (
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// DefaultArtifactsDir is the directory all ingestion outputs are written under.
	DefaultArtifactsDir = "artifacts"

	DefaultTestSize = 0.2
	DefaultSeed     = 42
)

// DefaultSourcePath is the dataset ingested when no other source is given.
var DefaultSourcePath = filepath.Join("notebook", "data", "stud.csv")

// Config holds the locations and split parameters used by an Ingestor.
type Config struct {
	// Path of the delimited file to ingest.
	SourcePath string `toml:"source"`

	// Output files for the full dataset and its two partitions.
	RawDataPath   string `toml:"raw-path"`
	TrainDataPath string `toml:"train-path"`
	TestDataPath  string `toml:"test-path"`

	// Fraction of rows held out for testing, and the seed of the shuffle
	// deciding which rows those are.
	TestSize float64 `toml:"test-size"`
	Seed     int64   `toml:"seed"`
}

// NewConfig returns the default ingestion configuration.
func NewConfig() Config {
	return Config{
		SourcePath:    DefaultSourcePath,
		RawDataPath:   filepath.Join(DefaultArtifactsDir, "data.csv"),
		TrainDataPath: filepath.Join(DefaultArtifactsDir, "train.csv"),
		TestDataPath:  filepath.Join(DefaultArtifactsDir, "test.csv"),
		TestSize:      DefaultTestSize,
		Seed:          DefaultSeed,
	}
}

// Validate reports whether c can be used by an Ingestor.
func (c Config) Validate() error {
	switch {
	case c.SourcePath == "":
		return errors.New("source path is required")
	case c.RawDataPath == "" || c.TrainDataPath == "" || c.TestDataPath == "":
		return errors.New("raw, train and test paths are required")
	case !(c.TestSize > 0 && c.TestSize < 1):
		return errors.Errorf("test size must be between 0 and 1 exclusive, got %v", c.TestSize)
	}

	seen := make(map[string]string, 3)
	for _, out := range []struct{ name, path string }{
		{"raw", c.RawDataPath},
		{"train", c.TrainDataPath},
		{"test", c.TestDataPath},
	} {
		clean := filepath.Clean(out.path)
		if other, ok := seen[clean]; ok {
			return errors.Errorf("%s and %s paths are both '%s'", other, out.name, out.path)
		}
		seen[clean] = out.name
	}
	return nil
}

// outputDirs returns the distinct directories of the output paths.
func (c Config) outputDirs() []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, path := range []string{c.RawDataPath, c.TrainDataPath, c.TestDataPath} {
		dir := filepath.Dir(path)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
