// Copyright 2025 The golzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golzip/lzip"
)

func TestCompressorOutputPath(t *testing.T) {
	c := compressor{level: lzip.Default}

	out, err := c.outputPath("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "notes.txt.lz", out)

	_, err = c.outputPath("notes.txt.lz")
	assert.Error(t, err)
	_, err = c.outputPath("")
	assert.Error(t, err)
}

func TestDecompressorOutputPath(t *testing.T) {
	d := decompressor{}

	out, err := d.outputPath("notes.txt.lz")
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", out)

	_, err = d.outputPath("notes.txt")
	assert.Error(t, err)
	_, err = d.outputPath(filepath.Join("dir", ".lz"))
	assert.Error(t, err)
}

func TestProcessFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	content := []byte("golzip stores one member per file\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	err := processFile(path, compressor{level: lzip.Fast}, options{})
	require.NoError(t, err)

	// the input is removed, the member takes its place
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(path + lzSuffix)
	require.NoError(t, err)

	err = processFile(path+lzSuffix, decompressor{}, options{})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestProcessFileKeep(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0644))

	err := processFile(path, compressor{level: lzip.Default},
		options{keep: true})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(path + lzSuffix)
	assert.NoError(t, err)
}

func TestProcessFileRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	require.NoError(t, os.WriteFile(path+lzSuffix, []byte("old"), 0644))

	err := processFile(path, compressor{level: lzip.Default}, options{})
	assert.Error(t, err)

	// with force the stale file is replaced and must decode again
	err = processFile(path, compressor{level: lzip.Default},
		options{force: true, keep: true})
	require.NoError(t, err)
	err = processFile(path+lzSuffix, decompressor{},
		options{force: true, keep: true})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), got)
}
