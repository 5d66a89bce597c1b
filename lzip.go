// Copyright 2025 The golzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzip supports the compression and decompression of lzip members.
//
// An lzip member wraps a raw LZMA stream with a 6-byte header carrying the
// magic bytes, a format version and the encoded dictionary size, and a
// 20-byte trailer carrying the CRC32 of the uncompressed data, the
// uncompressed size and the total member size. The package encodes and
// decodes exactly one member per stream.
package lzip

// Bounds for the dictionary size of the LZMA stream inside a member. The
// header stores the size in a single byte, see encodeDictSize.
const (
	// MinDictSize is the minimum supported dictionary size of 4 KiB.
	MinDictSize = 1 << 12
	// MaxDictSize is the maximum supported dictionary size of 512 MiB.
	MaxDictSize = 1 << 29
	// DefaultDictSize is the dictionary size used if nothing else has
	// been requested, 8 MiB.
	DefaultDictSize = 1 << 23
)
