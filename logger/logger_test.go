// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/featurebasedb/mlpipeline/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewStandardLogger(&buf)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.WithPrefix("[run] ").Errorf("failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "INFO:  shown 2"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "[run] ERROR: failed"), lines[1])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestVerboseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.NewVerboseLogger(&buf).Debugf("details")
	assert.Contains(t, buf.String(), "DEBUG: details")
}

func TestBufferLogger(t *testing.T) {
	b := logger.NewBufferLogger()
	b.Infof("a")
	b.Debugf("dropped")
	b.WithPrefix("p ").Warnf("b")
	assert.Equal(t, "INFO:  a\np WARN:  b\n", b.String())
}
