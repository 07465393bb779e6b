// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/featurebasedb/mlpipeline/ingest"
)

// UsageError is wrapped by errors caused by invalid command arguments.
var UsageError = errors.New("usage error")

// SetIngestConfig creates the flags configuring an ingestion run.
func SetIngestConfig(flags *pflag.FlagSet, c *ingest.Config) {
	flags.StringVarP(&c.SourcePath, "source", "s", c.SourcePath, "CSV file to ingest.")
	flags.StringVar(&c.RawDataPath, "raw-path", c.RawDataPath, "Output file for an unmodified copy of the dataset.")
	flags.StringVar(&c.TrainDataPath, "train-path", c.TrainDataPath, "Output file for the train set.")
	flags.StringVar(&c.TestDataPath, "test-path", c.TestDataPath, "Output file for the test set.")
	flags.Float64Var(&c.TestSize, "test-size", c.TestSize, "Fraction of rows held out as the test set.")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "Seed of the shuffle assigning rows to train and test.")
}
