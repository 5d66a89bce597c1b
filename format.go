// Copyright 2025 The golzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzip

import (
	"bytes"
	"io"
	"math/bits"
)

/*** Header ***/

// headerMagic stores the magic bytes for the member header
var headerMagic = []byte{'L', 'Z', 'I', 'P'}

// lzipVersion is the only format version this package supports.
const lzipVersion = 1

// headerLen gives the length of the member header in bytes.
const headerLen = 6

// decodeDictSize decodes the dictionary size from the header byte. Bits 0
// to 4 hold the exponent of the base size, bits 5 to 7 the number of
// sixteenths subtracted from it.
func decodeDictSize(b byte) (ds uint32, err error) {
	ds = uint32(1) << (b & 0x1f)
	if ds > MinDictSize {
		ds -= (ds / 16) * uint32((b>>5)&0x07)
	}
	if !(MinDictSize <= ds && ds <= MaxDictSize) {
		return 0, ErrInvalidDictSize
	}
	return ds, nil
}

// encodeDictSize encodes the dictionary size into a single byte. The
// function is the inverse of decodeDictSize for every size in the valid
// range; the size must have been verified before.
func encodeDictSize(ds uint32) byte {
	c := byte(bits.Len32(ds - 1))
	if ds > MinDictSize {
		base := uint32(1) << c
		frac := base / 16
		for i := uint32(7); i >= 1; i-- {
			if base-i*frac >= ds {
				c |= byte(i) << 5
				break
			}
		}
	}
	return c
}

// writeHeader writes the member header into the provided writer.
func writeHeader(w io.Writer, dictSize uint32) (n int, err error) {
	p := make([]byte, headerLen)
	copy(p, headerMagic)
	p[4] = lzipVersion
	p[5] = encodeDictSize(dictSize)
	return w.Write(p)
}

// readHeader reads the member header and returns the dictionary size.
func readHeader(r io.Reader) (dictSize uint32, n int, err error) {
	p := make([]byte, headerLen)
	if n, err = io.ReadFull(r, p); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, n, err
	}
	if !bytes.Equal(headerMagic, p[:4]) {
		return 0, n, ErrInvalidMagic
	}
	if p[4] != lzipVersion {
		return 0, n, ErrUnsupportedVersion
	}
	if dictSize, err = decodeDictSize(p[5]); err != nil {
		return 0, n, err
	}
	return dictSize, n, nil
}

/*** Trailer ***/

// trailerLen gives the length of the member trailer in bytes.
const trailerLen = 20

// trailer describes the member trailer. All fields are stored little
// endian.
type trailer struct {
	// crc is the CRC32 of the uncompressed data.
	crc uint32
	// dataSize is the size of the uncompressed data in bytes.
	dataSize uint64
	// memberSize is the total length of the member including header and
	// trailer.
	memberSize uint64
}

// writeTo writes the trailer into the writer.
func (t *trailer) writeTo(w io.Writer) (n int, err error) {
	p := make([]byte, trailerLen)
	putUint32LE(p[:4], t.crc)
	putUint64LE(p[4:12], t.dataSize)
	putUint64LE(p[12:], t.memberSize)
	return w.Write(p)
}

// readFrom reads the trailer from the reader.
func (t *trailer) readFrom(r io.Reader) (n int, err error) {
	p := make([]byte, trailerLen)
	if n, err = io.ReadFull(r, p); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return n, err
	}
	t.crc = uint32LE(p[:4])
	t.dataSize = uint64LE(p[4:12])
	t.memberSize = uint64LE(p[12:])
	return n, nil
}
