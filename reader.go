// Copyright 2025 The golzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzip

import (
	"bufio"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// Decoder decompresses a single lzip member. The member is consumed by one
// call to Decode; a Decoder cannot be reused.
type Decoder struct {
	r       io.Reader
	decoded bool
}

// NewDecoder creates a Decoder reading the member from r. The input is not
// touched before Decode is called.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// errDecoderUsed indicates a second Decode call on the same Decoder.
var errDecoderUsed = errors.New("lzip: decoder has already been used")

// Decode decompresses the member and writes the uncompressed data to w. The
// data is written incrementally while the member is read; if Decode returns
// an error the caller must treat everything written to w as invalid.
func (d *Decoder) Decode(w io.Writer) error {
	if d.decoded {
		return errDecoderUsed
	}
	d.decoded = true

	br := bufio.NewReader(d.r)
	dictSize, _, err := readHeader(br)
	if err != nil {
		return err
	}

	pr := newPayloadReader(br, dictSize)
	lr, err := lzma.ReaderConfig{DictCap: int(dictSize)}.NewReader(pr)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrUnexpectedEOS
		}
		return fmt.Errorf("lzip: lzma reader: %w", err)
	}

	crc := crc32.NewIEEE()
	sink := &errWriter{w: w}
	dataSize, err := io.Copy(io.MultiWriter(sink, crc), lr)
	if err != nil {
		if sink.err != nil {
			return sink.err
		}
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return ErrUnexpectedEOS
		}
		return fmt.Errorf("lzip: lzma reader: %w", err)
	}

	var t trailer
	if _, err = t.readFrom(br); err != nil {
		if err == io.ErrUnexpectedEOF {
			return ErrUnexpectedEOS
		}
		return err
	}
	if t.crc != crc.Sum32() {
		return ErrInvalidCRC
	}
	if t.dataSize != uint64(dataSize) {
		return ErrInvalidDataSize
	}
	if t.memberSize != headerLen+pr.n+trailerLen {
		return ErrInvalidMemberSize
	}
	return nil
}

// unknownSize is the value of the size field in the classic LZMA header
// that announces an end-of-stream marker instead of a known length.
const unknownSize = 1<<64 - 1

// payloadReader feeds the compression engine a synthesized classic LZMA
// header followed by the raw member payload. Payload bytes are handed out
// one at a time so that the engine cannot read beyond the LZMA stream into
// the member trailer; every payload byte consumed is counted.
type payloadReader struct {
	br     *bufio.Reader
	header []byte // unread part of the synthesized header
	n      uint64 // payload bytes consumed
}

func newPayloadReader(br *bufio.Reader, dictSize uint32) *payloadReader {
	p := make([]byte, lzma.HeaderLen)
	p[0] = lzma.Properties{LC: 3, LP: 0, PB: 2}.Code()
	putUint32LE(p[1:5], dictSize)
	putUint64LE(p[5:], unknownSize)
	return &payloadReader{br: br, header: p}
}

func (pr *payloadReader) Read(p []byte) (n int, err error) {
	if len(pr.header) > 0 {
		n = copy(p, pr.header)
		pr.header = pr.header[n:]
		return n, nil
	}
	if len(p) == 0 {
		return 0, nil
	}
	c, err := pr.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = c
	return 1, nil
}

func (pr *payloadReader) ReadByte() (c byte, err error) {
	if len(pr.header) > 0 {
		c = pr.header[0]
		pr.header = pr.header[1:]
		return c, nil
	}
	c, err = pr.br.ReadByte()
	if err == nil {
		pr.n++
	}
	return c, err
}
