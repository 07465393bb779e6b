// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/featurebasedb/mlpipeline"
	"github.com/featurebasedb/mlpipeline/ingest"
)

// GenerateConfigCommand represents a command for printing a default config.
type GenerateConfigCommand struct {
	*mlpipeline.CmdIO
}

// NewGenerateConfigCommand returns a new instance of GenerateConfigCommand.
func NewGenerateConfigCommand(stdin io.Reader, stdout, stderr io.Writer) *GenerateConfigCommand {
	return &GenerateConfigCommand{
		CmdIO: mlpipeline.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run prints out the default config.
func (cmd *GenerateConfigCommand) Run(_ context.Context) error {
	ret, err := toml.Marshal(ingest.NewConfig())
	if err != nil {
		return errors.Wrap(err, "marshalling default config")
	}
	fmt.Fprintf(cmd.Stdout, "%s\n", ret)
	return nil
}
