// Copyright 2021 Molecula Corp. All rights reserved.
package hash

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// SumSize is the byte length of the digests produced by this package.
const SumSize = 16

// Summer is an io.Writer that passes everything written to it through to an
// underlying writer while keeping a running blake3 hash of it. It is used to
// fingerprint artifacts as they are written, so nothing has to be read back.
type Summer struct {
	w      io.Writer
	hasher *blake3.Hasher
}

// NewSummer returns a Summer writing to w.
func NewSummer(w io.Writer) *Summer {
	return &Summer{
		w:      w,
		hasher: blake3.New(),
	}
}

func (s *Summer) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	// "Write implements part of the hash.Hash interface. It never returns an error."
	//  -- https://godoc.org/github.com/zeebo/blake3#Hasher.Write
	_, _ = s.hasher.Write(p[:n])
	return n, err
}

// Sum returns the hex encoded SumSize byte digest of everything written so far.
func (s *Summer) Sum() string {
	var buf [SumSize]byte
	// Digest.Read "always fills the entire buffer and never errors."
	_, _ = s.hasher.Digest().Read(buf[:])
	return hex.EncodeToString(buf[:])
}

// Blake3sum16 returns the 16 byte blake3 hash of input as a hexadecimal string.
func Blake3sum16(input []byte) string {
	s := NewSummer(io.Discard)
	_, _ = s.Write(input)
	return s.Sum()
}

// FileSum returns Blake3sum16 of the contents of the named file.
func FileSum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening file")
	}
	defer f.Close()

	s := NewSummer(io.Discard)
	if _, err := io.Copy(s, f); err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return s.Sum(), nil
}
