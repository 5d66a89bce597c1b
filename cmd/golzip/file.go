// Copyright 2025 The golzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/golzip/lzip"
)

const lzSuffix = ".lz"

// tmpSuffix marks output files still being written. The temporary file is
// renamed into place only after the whole member has been written, so a
// failed run never leaves a truncated member behind under the final name.
const tmpSuffix = ".golzip"

// coder joins the path convention of a mode with the streaming operation
// applied to the file content.
type coder interface {
	outputPath(path string) (string, error)
	process(w io.Writer, r io.Reader) error
}

type compressor struct {
	level lzip.Level
}

func (c compressor) outputPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasSuffix(path, lzSuffix) {
		return "", errors.Errorf("path %s already has suffix %s",
			path, lzSuffix)
	}
	return path + lzSuffix, nil
}

func (c compressor) process(w io.Writer, r io.Reader) error {
	e, err := lzip.NewEncoderLevel(r, c.level)
	if err != nil {
		return err
	}
	return e.Encode(w)
}

type decompressor struct{}

func (d decompressor) outputPath(path string) (string, error) {
	if !strings.HasSuffix(path, lzSuffix) {
		return "", errors.Errorf("path %s has no suffix %s",
			path, lzSuffix)
	}
	if filepath.Base(path) == lzSuffix {
		return "", errors.Errorf(
			"path %s has only suffix %s as filename",
			path, lzSuffix)
	}
	return path[:len(path)-len(lzSuffix)], nil
}

func (d decompressor) process(w io.Writer, r io.Reader) error {
	return lzip.NewDecoder(r).Decode(w)
}

type options struct {
	stdout bool
	keep   bool
	force  bool
}

// processStream runs the coder between buffered copies of the reader and
// the writer.
func processStream(w io.Writer, r io.Reader, c coder) error {
	bw := bufio.NewWriter(w)
	if err := c.process(bw, bufio.NewReader(r)); err != nil {
		return err
	}
	return bw.Flush()
}

// processFile applies the coder to a single file following the usual
// compressor conventions: output next to the input with the suffix added
// or stripped, input removed on success unless asked otherwise.
func processFile(path string, c coder, opt options) error {
	if path == "-" {
		return processStream(os.Stdout, os.Stdin, c)
	}

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	if opt.stdout {
		return processStream(os.Stdout, in, c)
	}

	out, err := c.outputPath(path)
	if err != nil {
		return err
	}
	if !opt.force {
		if _, err := os.Stat(out); err == nil {
			return errors.Errorf(
				"output file %s exists; use --force to overwrite",
				out)
		}
	}

	tmp := out + tmpSuffix
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "cannot create temporary file")
	}
	if err = processStream(f, in, c); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(err, "processing %s", path)
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err = os.Rename(tmp, out); err != nil {
		os.Remove(tmp)
		return err
	}
	log.Debug().Str("file", out).Msg("wrote output file")

	if !opt.keep {
		in.Close()
		if err = os.Remove(path); err != nil {
			return errors.Wrapf(err, "cannot remove input file %s",
				path)
		}
	}
	return nil
}
