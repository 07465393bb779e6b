// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package ingest implements the first step of the training pipeline: it
// loads the source dataset, keeps a raw copy of it, and splits it into the
// train and test sets later steps consume.
package ingest

import (
	"os"

	"github.com/featurebasedb/mlpipeline/dataset"
	"github.com/featurebasedb/mlpipeline/errors"
	"github.com/featurebasedb/mlpipeline/hash"
	"github.com/featurebasedb/mlpipeline/logger"
	"github.com/google/uuid"
)

// ErrIngestionFailed is the code of every error returned by Ingestor.Run and
// Ingestor.Ingest. The underlying cause is kept in the error chain.
const ErrIngestionFailed errors.Code = "IngestionFailed"

// Artifact names, as used in metric labels and Result.
const (
	ArtifactRaw   = "raw"
	ArtifactTrain = "train"
	ArtifactTest  = "test"
)

// Ingestor reads a dataset and writes its raw copy and train/test split.
type Ingestor struct {
	config Config
	logger logger.Logger
}

// ingestorOption is a functional option type for Ingestor.
type ingestorOption func(*Ingestor) error

// OptIngestorConfig sets the configuration. It fails if c is invalid.
func OptIngestorConfig(c Config) ingestorOption {
	return func(ing *Ingestor) error {
		if err := c.Validate(); err != nil {
			return errors.Wrap(err, "validating config")
		}
		ing.config = c
		return nil
	}
}

func OptIngestorLogger(l logger.Logger) ingestorOption {
	return func(ing *Ingestor) error {
		ing.logger = l
		return nil
	}
}

// NewIngestor returns an Ingestor using NewConfig() unless told otherwise.
func NewIngestor(opts ...ingestorOption) (*Ingestor, error) {
	ing := &Ingestor{
		config: NewConfig(),
		logger: logger.NopLogger,
	}
	for _, opt := range opts {
		if err := opt(ing); err != nil {
			return nil, errors.Wrap(err, "applying option")
		}
	}
	return ing, nil
}

// Config returns a copy of the configuration in use.
func (ing *Ingestor) Config() Config {
	return ing.config
}

// Result describes a completed ingestion run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	RawPath   string
	TrainPath string
	TestPath  string

	Rows      int
	TrainRows int
	TestRows  int

	// Checksums holds the blake3 sum of each written file by artifact name.
	Checksums map[string]string
}

// Ingest runs the ingestion and returns the paths of the train and test
// files.
func (ing *Ingestor) Ingest() (trainPath, testPath string, err error) {
	res, err := ing.Run()
	if err != nil {
		return "", "", err
	}
	return res.TrainPath, res.TestPath, nil
}

// Run loads the source dataset, writes it unchanged to the raw path, splits
// it, and writes the partitions to the train and test paths. Existing output
// files are overwritten. Any failure is returned as an ErrIngestionFailed
// error; if the source cannot be loaded nothing is written.
func (ing *Ingestor) Run() (res *Result, err error) {
	runID := uuid.NewString()
	log := ing.logger.WithPrefix("[ingest " + runID + "] ")
	log.Infof("entered the data ingestion method or component")

	defer func() {
		if err != nil {
			CounterRuns.WithLabelValues("failure").Inc()
			log.Errorf("ingestion failed: %v", err)
			err = errors.WithCode(err, ErrIngestionFailed, "ingestion failed")
			return
		}
		CounterRuns.WithLabelValues("success").Inc()
	}()

	c := ing.config
	d, err := dataset.ReadFile(c.SourcePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading dataset %s", c.SourcePath)
	}
	CounterRowsRead.Add(float64(d.Len()))
	log.Infof("read the dataset as dataframe: %d rows, %d columns", d.Len(), len(d.Header))

	for _, dir := range c.outputDirs() {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, errors.Wrapf(err, "creating output directory %s", dir)
		}
	}

	res = &Result{
		RunID:     runID,
		RawPath:   c.RawDataPath,
		TrainPath: c.TrainDataPath,
		TestPath:  c.TestDataPath,
		Rows:      d.Len(),
		Checksums: make(map[string]string, 3),
	}
	if res.Checksums[ArtifactRaw], err = persist(log, d, c.RawDataPath, ArtifactRaw); err != nil {
		return nil, err
	}

	log.Infof("train test split initiated")
	train, test, err := dataset.Split(d, c.TestSize, c.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "splitting dataset")
	}
	res.TrainRows, res.TestRows = train.Len(), test.Len()

	if res.Checksums[ArtifactTrain], err = persist(log, train, c.TrainDataPath, ArtifactTrain); err != nil {
		return nil, err
	}
	if res.Checksums[ArtifactTest], err = persist(log, test, c.TestDataPath, ArtifactTest); err != nil {
		return nil, err
	}

	log.Infof("ingestion of the data is completed: %d train rows, %d test rows", res.TrainRows, res.TestRows)
	return res, nil
}

// persist writes d to path, truncating any existing file, and returns the
// checksum of what was written.
func persist(log logger.Logger, d *dataset.Dataset, path, artifact string) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s file", artifact)
	}
	defer f.Close()

	s := hash.NewSummer(f)
	if err := d.WriteCSV(s); err != nil {
		return "", errors.Wrapf(err, "writing %s file %s", artifact, path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "closing %s file %s", artifact, path)
	}

	CounterRowsWritten.WithLabelValues(artifact).Add(float64(d.Len()))
	log.Debugf("wrote %s: %d rows, blake3 %s", path, d.Len(), s.Sum())
	return s.Sum(), nil
}
