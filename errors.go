// Copyright 2025 The golzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzip

import "errors"

// Errors returned for a corrupt or unsupported member. All of them are
// terminal for the current Encode or Decode call; the package never retries.
var (
	// ErrInvalidMagic indicates that the stream doesn't start with the
	// lzip magic bytes.
	ErrInvalidMagic = errors.New("lzip: invalid magic bytes")
	// ErrUnsupportedVersion indicates a version byte other than 1.
	ErrUnsupportedVersion = errors.New("lzip: unsupported version")
	// ErrInvalidDictSize indicates a dictionary size outside of the range
	// from 4 KiB to 512 MiB.
	ErrInvalidDictSize = errors.New("lzip: dictionary size out of range")
	// ErrUnexpectedEOS indicates that the member ended before the LZMA
	// stream signaled the end of the data.
	ErrUnexpectedEOS = errors.New("lzip: unexpected end of stream")
	// ErrInvalidCRC indicates that the CRC32 stored in the trailer doesn't
	// match the checksum of the uncompressed data.
	ErrInvalidCRC = errors.New("lzip: CRC32 mismatch")
	// ErrInvalidDataSize indicates that the uncompressed size stored in
	// the trailer doesn't match the number of bytes decompressed.
	ErrInvalidDataSize = errors.New("lzip: uncompressed data size mismatch")
	// ErrInvalidMemberSize indicates that the member size stored in the
	// trailer doesn't match the actual length of the member.
	ErrInvalidMemberSize = errors.New("lzip: member size mismatch")
)
