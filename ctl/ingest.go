// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/featurebasedb/mlpipeline"
	"github.com/featurebasedb/mlpipeline/ingest"
	"github.com/featurebasedb/mlpipeline/logger"
)

// IngestCommand represents a command for ingesting a dataset into train and
// test files.
type IngestCommand struct {
	Config ingest.Config

	// File to append logs to instead of stderr.
	LogPath string
	Verbose bool

	// Standard input/output
	*mlpipeline.CmdIO
}

// NewIngestCommand returns a new instance of IngestCommand.
func NewIngestCommand(stdin io.Reader, stdout, stderr io.Writer) *IngestCommand {
	return &IngestCommand{
		Config: ingest.NewConfig(),
		CmdIO:  mlpipeline.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the ingestion and prints the train and test paths, one per
// line.
func (cmd *IngestCommand) Run(_ context.Context) error {
	if err := cmd.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", UsageError, err)
	}

	closeLog, err := cmd.setupLogger()
	if err != nil {
		return errors.Wrap(err, "setting up logger")
	}
	defer closeLog()

	ing, err := ingest.NewIngestor(
		ingest.OptIngestorConfig(cmd.Config),
		ingest.OptIngestorLogger(cmd.Logger()),
	)
	if err != nil {
		return errors.Wrap(err, "creating ingestor")
	}

	res, err := ing.Run()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Stdout, res.TrainPath)
	fmt.Fprintln(cmd.Stdout, res.TestPath)
	return nil
}

// setupLogger points the command's logger at LogPath, if set, and raises its
// verbosity if requested. The returned func releases the log file.
func (cmd *IngestCommand) setupLogger() (func(), error) {
	var w io.Writer = cmd.Stderr
	closeLog := func() {}
	if cmd.LogPath != "" {
		fw, err := logger.NewFileWriter(cmd.LogPath)
		if err != nil {
			return nil, errors.Wrapf(err, "opening log file %s", cmd.LogPath)
		}
		w = fw
		closeLog = func() { fw.Close() }
	}

	if cmd.Verbose {
		cmd.SetLogger(logger.NewVerboseLogger(w))
	} else {
		cmd.SetLogger(logger.NewStandardLogger(w))
	}
	return closeLog, nil
}
