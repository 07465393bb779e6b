// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/featurebasedb/mlpipeline/ctl"
)

func newIngestCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	ingester := ctl.NewIngestCommand(stdin, stdout, stderr)
	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Split a dataset into train and test sets.",
		Long: `
Reads a CSV dataset with a header row, writes an unmodified copy of it to the
raw path, shuffles its rows with a fixed seed and writes the first part to the
test path and the rest to the train path. Existing output files are
overwritten. The same input and seed always produce identical files.

On success the train and test paths are printed to stdout, one per line.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ingester.Run(context.Background())
		},
	}
	flags := ingestCmd.Flags()

	ctl.SetIngestConfig(flags, &ingester.Config)
	flags.StringVar(&ingester.LogPath, "log-path", "", "Log file to append to instead of stderr.")
	flags.BoolVarP(&ingester.Verbose, "verbose", "v", false, "Enable debug logging.")

	return ingestCmd
}
