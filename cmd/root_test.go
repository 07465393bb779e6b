// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/featurebasedb/mlpipeline/cmd"
	"github.com/featurebasedb/mlpipeline/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execRootCommand executes the root command with the given arguments and
// returns its stdout and stderr.
func execRootCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rc := cmd.NewRootCommand(strings.NewReader(""), &out, &errOut)
	rc.SetArgs(args)
	err = rc.Execute()
	return out.String(), errOut.String(), err
}

// setupWorkspace writes a source dataset of n rows into a fresh directory
// and returns the directory.
func setupWorkspace(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	var buf bytes.Buffer
	buf.WriteString("gender,math_score,reading_score\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&buf, "male,%d,%d\n", i, 100-i)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stud.csv"), buf.Bytes(), 0600))
	return dir
}

func pathArgs(dir string) []string {
	return []string{
		"--source", filepath.Join(dir, "stud.csv"),
		"--raw-path", filepath.Join(dir, "artifacts", "data.csv"),
		"--train-path", filepath.Join(dir, "artifacts", "train.csv"),
		"--test-path", filepath.Join(dir, "artifacts", "test.csv"),
	}
}

func rowCount(t *testing.T, path string) int {
	t.Helper()
	d, err := dataset.ReadFile(path)
	require.NoError(t, err)
	return d.Len()
}

func TestRootCommand(t *testing.T) {
	outStr, _, err := execRootCommand(t, "--help")
	require.NoError(t, err)
	if !strings.Contains(outStr, "Usage:") ||
		!strings.Contains(outStr, "Available Commands:") ||
		!strings.Contains(outStr, "ingest") ||
		!strings.Contains(outStr, "generate-config") {
		t.Fatalf("Expected standard usage message from RootCommand, but got: %s", outStr)
	}
}

func TestIngestCommand(t *testing.T) {
	dir := setupWorkspace(t, 50)

	stdout, _, err := execRootCommand(t, append([]string{"ingest"}, pathArgs(dir)...)...)
	require.NoError(t, err)

	trainPath := filepath.Join(dir, "artifacts", "train.csv")
	testPath := filepath.Join(dir, "artifacts", "test.csv")
	assert.Equal(t, trainPath+"\n"+testPath+"\n", stdout)
	assert.Equal(t, 50, rowCount(t, filepath.Join(dir, "artifacts", "data.csv")))
	assert.Equal(t, 40, rowCount(t, trainPath))
	assert.Equal(t, 10, rowCount(t, testPath))
}

func TestIngestCommand_Flags(t *testing.T) {
	dir := setupWorkspace(t, 50)

	args := append([]string{"ingest", "--test-size", "0.5", "--seed", "3"}, pathArgs(dir)...)
	_, _, err := execRootCommand(t, args...)
	require.NoError(t, err)
	assert.Equal(t, 25, rowCount(t, filepath.Join(dir, "artifacts", "test.csv")))
}

func TestIngestCommand_Env(t *testing.T) {
	dir := setupWorkspace(t, 50)
	t.Setenv("MLPIPELINE_TEST_SIZE", "0.3")

	_, _, err := execRootCommand(t, append([]string{"ingest"}, pathArgs(dir)...)...)
	require.NoError(t, err)
	assert.Equal(t, 15, rowCount(t, filepath.Join(dir, "artifacts", "test.csv")))

	// flags take priority over the environment
	args := append([]string{"ingest", "--test-size", "0.4"}, pathArgs(dir)...)
	_, _, err = execRootCommand(t, args...)
	require.NoError(t, err)
	assert.Equal(t, 20, rowCount(t, filepath.Join(dir, "artifacts", "test.csv")))
}

func TestIngestCommand_ConfigFile(t *testing.T) {
	dir := setupWorkspace(t, 50)
	conf := filepath.Join(dir, "ingest.toml")
	content := fmt.Sprintf(`source = %q
raw-path = %q
train-path = %q
test-path = %q
test-size = 0.1
`,
		filepath.Join(dir, "stud.csv"),
		filepath.Join(dir, "out", "data.csv"),
		filepath.Join(dir, "out", "train.csv"),
		filepath.Join(dir, "out", "test.csv"),
	)
	require.NoError(t, os.WriteFile(conf, []byte(content), 0600))

	stdout, _, err := execRootCommand(t, "ingest", "--config", conf)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "out", "train.csv"))
	assert.Equal(t, 5, rowCount(t, filepath.Join(dir, "out", "test.csv")))
	assert.Equal(t, 45, rowCount(t, filepath.Join(dir, "out", "train.csv")))
}

func TestIngestCommand_ConfigFileInvalidKey(t *testing.T) {
	dir := setupWorkspace(t, 10)
	conf := filepath.Join(dir, "ingest.toml")
	require.NoError(t, os.WriteFile(conf, []byte("shuffle = false\n"), 0600))

	_, _, err := execRootCommand(t, "ingest", "--config", conf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option in configuration file: shuffle")
}

func TestIngestCommand_MissingSource(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execRootCommand(t, append([]string{"ingest"}, pathArgs(dir)...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingestion failed")

	_, statErr := os.Stat(filepath.Join(dir, "artifacts"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateConfigCommand(t *testing.T) {
	stdout, _, err := execRootCommand(t, "generate-config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "test-size = 0.2")
	assert.Contains(t, stdout, "seed = 42")
}

func TestGenerateConfigRoundTrip(t *testing.T) {
	dir := setupWorkspace(t, 20)
	stdout, _, err := execRootCommand(t, "generate-config")
	require.NoError(t, err)

	conf := filepath.Join(dir, "ingest.toml")
	require.NoError(t, os.WriteFile(conf, []byte(stdout), 0600))

	// The generated file is accepted as is; flags still override it.
	out, _, err := execRootCommand(t, append([]string{"ingest", "--config", conf}, pathArgs(dir)...)...)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "artifacts", "train.csv"))
	assert.Equal(t, 4, rowCount(t, filepath.Join(dir, "artifacts", "test.csv")))
}
