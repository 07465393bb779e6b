// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package logger

import (
	"os"
	"path/filepath"
	"sync"
)

// FileWriter appends log output to a named file.
type FileWriter struct {
	mu   sync.Mutex // protects f
	f    *os.File
	name string
}

// NewFileWriter opens name for appending, creating it and its parent
// directory if needed.
func NewFileWriter(name string) (*FileWriter, error) {
	return NewFileWriterMode(name, 0600)
}

// NewFileWriterMode is NewFileWriter with a specific permission for a newly
// created file.
func NewFileWriterMode(name string, mode os.FileMode) (*FileWriter, error) {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_APPEND|os.O_CREATE, mode)
	if err != nil {
		return nil, err
	}
	return &FileWriter{f: f, name: name}, nil
}

// Name returns the path the writer was opened with.
func (f *FileWriter) Name() string {
	return f.name
}

// Write implements io.Writer.
func (f *FileWriter) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.Write(p)
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.Close()
}
